package questions

import "fmt"

// NotArrayError reports an input whose top-level JSON value is not an array.
type NotArrayError struct {
	Path   string
	Reason string
}

func (e *NotArrayError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: expected a JSON array of questions", e.Path)
	}
	return fmt.Sprintf("%s: expected a JSON array of questions: %s", e.Path, e.Reason)
}
