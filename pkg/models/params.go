package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// StringOrList is a request parameter that the API accepts either as a
// single string or as an array of strings (prompt, stop)
type StringOrList struct {
	value  string
	items  []string
	isList bool
}

// String returns a single-string StringOrList
func String(s string) StringOrList {
	return StringOrList{value: s}
}

// List returns a list StringOrList holding a copy of items
func List(items ...string) StringOrList {
	if items == nil {
		items = []string{}
	}
	return StringOrList{items: slices.Clone(items), isList: true}
}

// IsList reports whether the list variant is set
func (p StringOrList) IsList() bool {
	return p.isList
}

// Value returns the single string, ok is false for the list variant
func (p StringOrList) Value() (string, bool) {
	return p.value, !p.isList
}

// Items returns a copy of the list, ok is false for the single-string variant
func (p StringOrList) Items() ([]string, bool) {
	return slices.Clone(p.items), p.isList
}

// MarshalJSON encodes the value as a bare string or a bare array
func (p StringOrList) MarshalJSON() ([]byte, error) {
	if p.isList {
		return json.Marshal(p.items)
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON accepts a string first, then an array of strings
func (p *StringOrList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = String(s)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*p = List(items...)
		return nil
	}

	return fmt.Errorf("expected string or array of strings, got %s", data)
}

// Ptr returns a pointer to v, handy for optional request fields
func Ptr[T any](v T) *T {
	return &v
}
