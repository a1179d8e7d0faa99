package scales

import (
	"github.com/cockroachdb/errors"

	"github.com/vdobler/scales/data"
)

// domainSource is what domain inference reads from the data model.
type domainSource interface {
	DisplayData() []data.Record
	DataValuesGroupedByKeys() []data.KeyedValues
}

// inferDomain determines the domain of the axis ax:
//   1. An explicit domain is used verbatim.
//   2. Labels scales use the distinct field values in order of appearance.
//   3. Continuous scales take the extent of the field values (or of the
//      stacked sums), optionally including 0, and pad it. Time domains with
//      edgeSpace > 0 are expanded by calendar units instead of padded.
//      Log domains never include 0, and a bound is left unpadded if
//      padding would make it reach or cross 0.
// Strings on Time axes are parsed with layouts.
func inferDomain(ax *AxisOptions, src domainSource, padding float64, edgeSpace int, layouts []string) (Domain, error) {
	st := ax.ScaleType
	if st == Time && edgeSpace < 0 {
		return Domain{}, errors.Wrapf(ErrInvalidOption, "timeScale.addSpaceOnEdges must not be negative, got %d", edgeSpace)
	}
	if len(ax.Domain) > 0 {
		return explicitDomain(st, ax.Domain, layouts)
	}

	records := src.DisplayData()
	if st == Labels {
		labels := distinctLabels(records, ax.MapsTo)
		if len(labels) == 0 {
			return Domain{}, emptyDomainError(ax.MapsTo, len(records))
		}
		return labelDomain(labels), nil
	}

	var values []float64
	if ax.Stacked {
		for _, kv := range src.DataValuesGroupedByKeys() {
			values = append(values, kv.Sum())
		}
	} else {
		values = fieldValues(records, ax.MapsTo, st, layouts)
	}
	if len(values) == 0 {
		return Domain{}, emptyDomainError(ax.MapsTo, len(records))
	}
	if st == Linear && ax.IncludeZero {
		values = append(values, 0)
	}

	ext := unsetInterval()
	ext.Update(values...)
	if !ext.Valid() {
		return Domain{}, errors.Wrapf(ErrEmptyDomain, "field %q has only NaN values", ax.MapsTo)
	}

	if st == Time {
		if edgeSpace > 0 {
			start, end, _ := expandTimeEdges(millisToTime(ext.Min), millisToTime(ext.Max), edgeSpace)
			return timeDomain(start, end), nil
		}
		ext = padInterval(ext, padding)
		return timeDomain(millisToTime(ext.Min), millisToTime(ext.Max)), nil
	}

	if st == Log {
		ext = padLogInterval(ext, padding)
	} else {
		ext = padInterval(ext, padding)
	}
	return numericDomain(st, ext.Min, ext.Max), nil
}

func emptyDomainError(field string, n int) error {
	return errors.WithHintf(
		errors.Wrapf(ErrEmptyDomain, "no values for field %q in %d records", field, n),
		"check that the records contain the field %q or set an explicit domain", field)
}

// explicitDomain interprets a configured domain for scale type st.
func explicitDomain(st ScaleType, raw []interface{}, layouts []string) (Domain, error) {
	if st == Labels {
		labels := make([]string, len(raw))
		for i, v := range raw {
			labels[i] = toLabel(v)
		}
		return labelDomain(labels), nil
	}

	if len(raw) != 2 {
		return Domain{}, errors.Wrapf(ErrInvalidDomain, "%s domain needs 2 bounds, got %d", st, len(raw))
	}
	if st == Time {
		start, err := toTime(raw[0], layouts)
		if err != nil {
			return Domain{}, errors.Mark(err, ErrInvalidDomain)
		}
		end, err := toTime(raw[1], layouts)
		if err != nil {
			return Domain{}, errors.Mark(err, ErrInvalidDomain)
		}
		return timeDomain(start, end), nil
	}

	lo, err := toFloat(raw[0])
	if err != nil {
		return Domain{}, errors.Mark(err, ErrInvalidDomain)
	}
	hi, err := toFloat(raw[1])
	if err != nil {
		return Domain{}, errors.Mark(err, ErrInvalidDomain)
	}
	return numericDomain(st, lo, hi), nil
}

// distinctLabels returns the distinct labels of field in order of their
// first occurrence. Records without the field are skipped.
func distinctLabels(records []data.Record, field string) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, r := range records {
		v, ok := r.Value(field)
		if !ok {
			continue
		}
		l := toLabel(v)
		if seen[l] {
			continue
		}
		seen[l] = true
		labels = append(labels, l)
	}
	return labels
}

// fieldValues returns the numeric values of field; times are returned in
// Unix milliseconds. Missing and uninterpretable values are skipped.
func fieldValues(records []data.Record, field string, st ScaleType, layouts []string) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		v, ok := r.Value(field)
		if !ok {
			continue
		}
		if st == Time {
			t, err := toTime(v, layouts)
			if err != nil {
				continue
			}
			values = append(values, timeToMillis(t))
			continue
		}
		x, err := toFloat(v)
		if err != nil {
			continue
		}
		values = append(values, x)
	}
	return values
}
