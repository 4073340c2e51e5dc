package netsuite

import (
	"encoding/json"
	"fmt"
)

// Row is one joined record returned by a SuiteQL query page, keyed by the
// query-defined column aliases. Numeric values are json.Number so that ids
// survive the round trip without float formatting artifacts.
type Row map[string]any

// String returns the row's value for key rendered as a string,
// or "" if the key is absent or null.
func (r Row) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Has reports whether the row carries a non-null value for key.
func (r Row) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}
