package domain

import "fmt"

// ErrorKind classifies failures surfaced to the caller.
type ErrorKind int

// Error kinds.
const (
	KindUserInput ErrorKind = iota + 1
	KindConfiguration
	KindRegistry
	KindInstallation
	KindNotSupported
)

func (k ErrorKind) String() string {
	switch k {
	case KindUserInput:
		return "user input error"
	case KindConfiguration:
		return "configuration error"
	case KindRegistry:
		return "registry error"
	case KindInstallation:
		return "installation error"
	case KindNotSupported:
		return "not supported"
	default:
		return "error"
	}
}

// Error is a classified failure. Its message is meant to be shown verbatim.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// Sentinels for errors.Is.
var (
	ErrUserInput     = &Error{Kind: KindUserInput}
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrRegistry      = &Error{Kind: KindRegistry}
	ErrInstallation  = &Error{Kind: KindInstallation}
	ErrNotSupported  = &Error{Kind: KindNotSupported}
)

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}

	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any Error of the same kind when target is a sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if t.Msg == "" && t.Err == nil {
		return t.Kind == e.Kind
	}

	return t == e
}

func newError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func userInputErrorf(format string, args ...any) error {
	return newError(KindUserInput, nil, format, args...)
}

func configurationErrorf(format string, args ...any) error {
	return newError(KindConfiguration, nil, format, args...)
}

func registryErrorf(err error, format string, args ...any) error {
	return newError(KindRegistry, err, format, args...)
}

func installationErrorf(format string, args ...any) error {
	return newError(KindInstallation, nil, format, args...)
}

func notSupportedErrorf(format string, args ...any) error {
	return newError(KindNotSupported, nil, format, args...)
}
