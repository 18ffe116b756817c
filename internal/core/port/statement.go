package port

import (
	"fmt"

	"dfp-sync/internal/core/domain"
)

// Statement is a filter statement understood by the ad server's
// *ByStatement and action endpoints. Query holds a PQL clause such as
// "WHERE externalId = :externalId LIMIT 1 OFFSET 0"; Values bind the
// placeholders.
type Statement struct {
	Query  string    `json:"query"`
	Values []Binding `json:"values,omitempty"`
}

// Binding binds one :key placeholder to a typed value.
type Binding struct {
	Key   string       `json:"key"`
	Value BindingValue `json:"value"`
}

// BindingValue carries the remote type tag alongside the value.
type BindingValue struct {
	Type  string `json:"xsi_type"`
	Value any    `json:"value"`
}

// TextValue binds a string parameter.
func TextValue(key, value string) Binding {
	return Binding{Key: key, Value: BindingValue{Type: "TextValue", Value: value}}
}

// NumberValue binds a numeric parameter.
func NumberValue(key string, value int64) Binding {
	return Binding{Key: key, Value: BindingValue{Type: "NumberValue", Value: value}}
}

// NewStatement builds a statement from a WHERE clause. A positive limit
// restricts the page size; zero leaves the result set unbounded.
func NewStatement(where string, limit int, values ...Binding) Statement {
	query := where
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d OFFSET 0", where, limit)
	}
	return Statement{Query: query, Values: values}
}

// Page is one page of a *ByStatement response.
type Page struct {
	Results            []domain.Record `json:"results"`
	TotalResultSetSize int             `json:"totalResultSetSize"`
}

// First returns the first result or nil for an empty page.
func (p *Page) First() domain.Record {
	if p == nil || len(p.Results) == 0 {
		return nil
	}
	return p.Results[0]
}

// UpdateResult is returned by action endpoints.
type UpdateResult struct {
	NumChanges int `json:"numChanges"`
}
