package lint

import "fmt"

// InternalError marks an invariant violation inside the core — an
// undefined chess-side, a missing brick ancestor, an unknown rule class —
// per spec.md §7. These indicate a bug in the classifier or the grammar
// the frontend built the catalog from, and are not recoverable; the
// caller should log and abort rather than continue the walk.
type InternalError struct {
	Component string
	Function  string
	Message   string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s.%s: %s", e.Component, e.Function, e.Message)
}

func internalErrorf(component, function, format string, args ...any) *InternalError {
	return &InternalError{Component: component, Function: function, Message: fmt.Sprintf(format, args...)}
}
