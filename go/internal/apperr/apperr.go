// Package apperr defines the error kinds shared by every component of the
// draft session engine (spec §7). Each kind is a comparable sentinel;
// callers test membership with errors.Is and attach context with %w.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is one of the seven error kinds spec.md §7 names.
type Kind struct {
	name string
}

func (k Kind) Error() string { return k.name }

var (
	NotFound          = Kind{"not_found"}
	InvalidArgument   = Kind{"invalid_argument"}
	InvalidTransition = Kind{"invalid_transition"}
	Conflict          = Kind{"conflict"}
	NotOwned          = Kind{"not_owned"}
	NoEligible        = Kind{"no_eligible"}
	Unavailable       = Kind{"unavailable"}
)

// wrapped pairs a Kind with a contextual message and optional cause.
type wrapped struct {
	kind Kind
	msg  string
	err  error
}

func (w *wrapped) Error() string {
	if w.err != nil {
		return fmt.Sprintf("%s: %s: %v", w.kind.name, w.msg, w.err)
	}
	return fmt.Sprintf("%s: %s", w.kind.name, w.msg)
}

func (w *wrapped) Unwrap() error { return w.kind }

func (w *wrapped) Is(target error) bool {
	return errors.Is(w.kind, target)
}

// New builds an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) error {
	return &wrapped{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an error of the given kind that chains a lower-level cause.
func Wrap(kind Kind, err error, format string, args ...any) error {
	return &wrapped{kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}

// Is reports whether err (or any error in its chain) is of the given kind.
func Is(err error, kind Kind) bool {
	return errors.Is(err, kind)
}
