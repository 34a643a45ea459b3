package domain

import "errors"

// Error is a domain error carrying a stable code used for message lookup.
type Error struct {
	code string
	msg  string
}

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier of the error.
func (e *Error) Code() string { return e.code }

// Domain errors.
var (
	ErrNamespaceNotFound    = newError("namespace_not_found", "namespace not found")
	ErrEmptyTranslationUnit = newError("empty_translation_unit", "translation unit has no entries")
	ErrMissingDefaultLocale = newError("missing_default_locale", "translation unit has no default locale entry")
	ErrDuplicateTranslation = newError("duplicate_translation", "translation already defined")
	ErrInvalidLocaleSet     = newError("invalid_locale_set", "invalid locale configuration")
)

// Code extracts the domain error code from err, or "" if err is not a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
