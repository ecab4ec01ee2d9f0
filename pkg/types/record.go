package types

import (
	"encoding/json"
	"errors"
	"strconv"
)

// Record is one JSON object of an entity type as returned by the backend.
// The only attribute the cache logic interprets is "id"; everything else is
// opaque payload.
type Record map[string]any

// Record errors.
var (
	ErrMissingID     = errors.New("record has no id")
	ErrUnknownEntity = errors.New("unknown entity type")
)

// ID returns the record's "id" attribute as a string. Numeric ids (a
// json.Number or float64, depending on the decoder) are formatted without an
// exponent. Returns "" when the record has no usable id.
func (r Record) ID() string {
	switch v := r["id"].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// Clone returns a shallow copy of the record. Nested values are shared.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	cp := make(Record, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}

// MergeRecords shallow-merges patch onto base: fields present in patch
// override, fields absent in patch are preserved. Neither input is mutated.
func MergeRecords(base, patch Record) Record {
	merged := base.Clone()
	if merged == nil {
		merged = make(Record, len(patch))
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
