package filestats

import "fmt"

// Kind classifies a processing failure.
type Kind int

const (
	KeyDecoding    Kind = iota + 1 // malformed percent encoding in the object key
	ObjectFetch                    // object or bucket missing, or access denied
	ObjectDecoding                 // object bytes are not valid UTF-8 text
	Persistence                    // write to the stats table failed
)

func (k Kind) String() string {
	switch k {
	case KeyDecoding:
		return "key decoding"
	case ObjectFetch:
		return "object fetch"
	case ObjectDecoding:
		return "object decoding"
	case Persistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error records which step of processing failed and for which object key.
// Errors are never recovered locally; the adapter surfaces them to the
// invoking platform as a failed invocation and the platform's own redelivery
// policy applies.
type Error struct {
	Kind Kind
	Key  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error for %q: %s", e.Kind, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
