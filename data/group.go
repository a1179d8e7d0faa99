package data

import (
	"github.com/spf13/cast"
)

// Grouping partitions the records of a table by their key. Keys and the
// groups within a key are kept in order of first appearance.
type Grouping struct {
	Keys   []string
	Groups []string
	Values map[string]KeyedValues // Values contains the group values for each key
}

func newGrouping() *Grouping {
	return &Grouping{
		Values: make(map[string]KeyedValues),
	}
}

func (g *Grouping) add(key, group string, v float64) {
	kv, ok := g.Values[key]
	if !ok {
		kv = make(KeyedValues)
		g.Values[key] = kv
		g.Keys = append(g.Keys, key)
	}
	if _, ok := kv[group]; !ok && !g.hasGroup(group) {
		g.Groups = append(g.Groups, group)
	}
	kv[group] += v
}

func (g *Grouping) hasGroup(group string) bool {
	for _, gr := range g.Groups {
		if gr == group {
			return true
		}
	}
	return false
}

// Group partitions the records of t by KeyField. Records without a key or
// without a numeric value are ignored; repeated (key, group) pairs are
// summed.
func (t *Table) Group() *Grouping {
	g := newGrouping()
	for _, r := range t.Records {
		k, ok := r.Value(t.KeyField)
		if !ok {
			continue
		}
		raw, ok := r.Value(t.ValueField)
		if !ok {
			continue
		}
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			continue
		}
		group := ""
		if gv, ok := r.Value(t.GroupField); ok {
			group = cast.ToString(gv)
		}
		g.add(cast.ToString(k), group, v)
	}
	return g
}

// DataValuesGroupedByKeys returns one KeyedValues per key, in key order.
func (t *Table) DataValuesGroupedByKeys() []KeyedValues {
	g := t.Group()
	out := make([]KeyedValues, len(g.Keys))
	for i, k := range g.Keys {
		out[i] = g.Values[k]
	}
	return out
}
