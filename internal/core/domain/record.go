package domain

import (
	"encoding/json"
	"strconv"
)

// Record is a remote ad-server entity (order, line item, creative,
// association or company) as returned by the API. It is kept as a generic
// mapping so fields this service does not know about survive an update.
type Record map[string]any

// ID returns the numeric identifier of the record. Identifiers may arrive as
// JSON numbers or as strings.
func (r Record) ID() (int64, bool) {
	return r.Int("id")
}

// Int reads an integer field.
func (r Record) Int(key string) (int64, bool) {
	switch v := r[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// String reads a string field, returning "" when absent.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// IsArchived reports whether the remote side archived the record.
func (r Record) IsArchived() bool {
	archived, _ := r["isArchived"].(bool)
	return archived
}
