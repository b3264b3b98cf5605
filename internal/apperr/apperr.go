package apperr

import "errors"

// Kind classifies a failure so the HTTP layer can pick a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindBusiness
	KindUnauthorized
)

// Error is the typed error carried from rules/services up to the
// transport translator. Fields is only set for validation failures and
// lists the offending request fields.
type Error struct {
	Kind   Kind
	Msg    string
	Fields []string
	Err    error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Msg: msg} }
func Business(msg string) error     { return &Error{Kind: KindBusiness, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }

func Validation(msg string, fields ...string) error {
	return &Error{Kind: KindValidation, Msg: msg, Fields: fields}
}

func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf extracts the kind from any error in the chain; plain errors
// fall back to KindInternal so the translator stays total.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool { return err != nil && KindOf(err) == kind }

// FieldsOf returns the offending field names of a validation error.
func FieldsOf(err error) []string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Fields
	}
	return nil
}
