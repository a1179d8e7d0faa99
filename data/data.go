// Package data contains the record model charts are computed from and a
// prototypical in-memory implementation.
package data

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Default field names of a Table.
const (
	DefaultGroupField = "group"
	DefaultKeyField   = "key"
	DefaultValueField = "value"
)

// Record is one display datum, keyed by field name.
type Record map[string]interface{}

// Value returns the value of field and whether r has a non-nil value
// for it.
func (r Record) Value(field string) (interface{}, bool) {
	v, ok := r[field]
	return v, ok && v != nil
}

// KeyedValues are the values of all groups sharing one key, e.g. the
// per-series values of one category of a stacked bar chart.
type KeyedValues map[string]float64

// Sum returns the sum of all values in kv.
func (kv KeyedValues) Sum() float64 {
	sum := 0.0
	for _, v := range kv {
		sum += v
	}
	return sum
}

// Table is an ordered sequence of records.
type Table struct {
	Records []Record

	// GroupField names the series a record belongs to.
	GroupField string
	// KeyField names the value records of different groups share,
	// e.g. the category.
	KeyField string
	// ValueField names the measured value.
	ValueField string
}

// NewTable returns a table of records using the default field names.
func NewTable(records []Record) *Table {
	return &Table{
		Records:    records,
		GroupField: DefaultGroupField,
		KeyField:   DefaultKeyField,
		ValueField: DefaultValueField,
	}
}

// Decode reads a YAML or JSON list of records.
func Decode(buf []byte) (*Table, error) {
	var raw []map[string]interface{}
	if err := yaml.Unmarshal(buf, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding records")
	}
	records := make([]Record, len(raw))
	for i, r := range raw {
		records[i] = Record(r)
	}
	return NewTable(records), nil
}

// Len returns the number of records in t.
func (t *Table) Len() int { return len(t.Records) }

// DisplayData returns the records of t. The slice is shared, callers must
// not modify it.
func (t *Table) DisplayData() []Record { return t.Records }
