package membership

import "fmt"

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindInvalid
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindForbidden:
		return "forbidden"
	case KindInvalid:
		return "invalid"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a failure shown to the actor. Key is a message catalog key,
// formatted with Args.
type Error struct {
	Kind Kind
	Key  string
	Args []interface{}
}

func (e *Error) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Key)
	}
	return fmt.Sprintf("%s: %s %v", e.Kind, e.Key, e.Args)
}

func newError(kind Kind, key string, args ...interface{}) *Error {
	return &Error{Kind: kind, Key: key, Args: args}
}

var (
	errAngelTypeNotFound     = newError(KindNotFound, "angeltype.not_found")
	errUserAngelTypeNotFound = newError(KindNotFound, "user_angeltype.not_found")
	errUserNotFound          = newError(KindNotFound, "user.not_found")
	errNoSupporterUpdate     = newError(KindInvalid, "user_angeltypes.update.missing")
)

func forbidden(key string) *Error {
	return newError(KindForbidden, key)
}
