package main

import "github.com/pkg/errors"

// ErrKind classifies a top-level failure so main can map it to the right
// exit code and diagnostic behavior in one place, instead of scattering
// os.Exit calls through the engine.
type ErrKind int

const (
	// KindUsage is a bad CLI argument.
	KindUsage ErrKind = iota
	// KindIO is a file-system or stream failure.
	KindIO
	// KindParse is a malformed DIMACS input.
	KindParse
	// KindCapability is a request for an optimization the oracle does not
	// support.
	KindCapability
	// KindResource is an allocation failure for a candidate/fixed/constrain
	// store.
	KindResource
	// KindInvariant is a driver-state assertion failure, a checker
	// disagreement, or a checker-count mismatch.
	KindInvariant
)

func (k ErrKind) String() string {
	switch k {
	case KindUsage:
		return "usage error"
	case KindIO:
		return "I/O error"
	case KindParse:
		return "parse error"
	case KindCapability:
		return "capability error"
	case KindResource:
		return "resource error"
	case KindInvariant:
		return "invariant violation"
	default:
		return "error"
	}
}

type kindedError struct {
	kind ErrKind
	err  error
}

func (e *kindedError) Error() string { return e.err.Error() }
func (e *kindedError) Cause() error  { return e.err }
func (e *kindedError) Unwrap() error { return e.err }

// wrapKind tags err with kind and a message, preserving the original error
// for inspection via errors.Cause/errors.Unwrap.
func wrapKind(kind ErrKind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &kindedError{kind: kind, err: errors.Wrap(err, message)}
}

// kindOf extracts the ErrKind tagged onto err, defaulting to KindUsage for
// any error this repository itself did not classify — in practice, an
// untagged error reaching main can only have come from cobra's own flag or
// argument validation, which is a usage error by definition.
func kindOf(err error) ErrKind {
	var ke *kindedError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindUsage
}
