package glean

import (
	"fmt"
)

// SubmissionError is returned when the index endpoint answers with a
// non-success status. Body carries the raw response as diagnostic detail.
type SubmissionError struct {
	Status int
	Body   string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("index submission failed: status %d", e.Status)
}
