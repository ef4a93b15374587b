package registry

import "errors"

// NotFoundError is returned by Lookup when a name matches no registered
// command expression.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return "unknown command: " + e.Name
}

// IsNotFound reports whether err is a failed command lookup.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
