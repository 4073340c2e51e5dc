package netsuite

import (
	"fmt"
)

// RequestError is returned when a SuiteQL request comes back with a
// non-success status. Body carries the raw response for diagnostics.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("suiteql request failed: status %d", e.Status)
}
