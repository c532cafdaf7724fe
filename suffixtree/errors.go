package suffixtree

import "fmt"

// InvalidInput is returned when an appended string collides with the
// reserved terminator alphabet.
type InvalidInput struct {
	Input string
}

func (e InvalidInput) Error() string {
	return fmt.Sprintf("input contains the reserved delimiter %q: %q", delimiter, e.Input)
}

// InvalidArgument is returned for out-of-range search parameters.
type InvalidArgument struct {
	Reason string
}

func (e InvalidArgument) Error() string {
	return "invalid argument: " + e.Reason
}
