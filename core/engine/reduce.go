// core/engine/reduce.go
package engine

import "fmt"

// Record is a set of named numeric fields: one analyzer's summary of one
// sequence.
type Record map[string]float64

// Extremum pairs a dataset index with the record found there.
type Extremum struct {
	Index  int
	Record Record
}

// MaxBy returns the index and record holding the largest value of field.
// The comparison is strictly greater-than, so the earliest index wins ties.
// An empty record list or a record without the field is ErrDomain.
func MaxBy(records []Record, field string) (int, Record, error) {
	return extremeBy(records, field, func(v, best float64) bool { return v > best })
}

// MinBy is MaxBy's mirror: smallest value, earliest index on ties.
func MinBy(records []Record, field string) (int, Record, error) {
	return extremeBy(records, field, func(v, best float64) bool { return v < best })
}

func extremeBy(records []Record, field string, better func(v, best float64) bool) (int, Record, error) {
	if len(records) == 0 {
		return 0, nil, fmt.Errorf("%w: no records to reduce", ErrDomain)
	}
	bestIdx := -1
	var best float64
	for i, r := range records {
		v, ok := r[field]
		if !ok {
			return 0, nil, fmt.Errorf("%w: record %d has no field %q", ErrDomain, i, field)
		}
		if bestIdx < 0 || better(v, best) {
			bestIdx, best = i, v
		}
	}
	return bestIdx, records[bestIdx], nil
}

// Average returns the per-field arithmetic mean of records. Every record
// must carry exactly the same fields as the first; a mismatched schema is
// ErrConfig rather than a silently skewed mean. An empty list is ErrDomain.
func Average(records []Record) (Record, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records to average", ErrDomain)
	}
	first := records[0]
	sums := make(Record, len(first))
	for k := range first {
		sums[k] = 0
	}
	for i, r := range records {
		if len(r) != len(first) {
			return nil, fmt.Errorf("%w: record %d has %d fields, record 0 has %d", ErrConfig, i, len(r), len(first))
		}
		for k, v := range r {
			if _, ok := first[k]; !ok {
				return nil, fmt.Errorf("%w: record %d has unexpected field %q", ErrConfig, i, k)
			}
			sums[k] += v
		}
	}
	n := float64(len(records))
	for k := range sums {
		sums[k] /= n
	}
	return sums, nil
}
