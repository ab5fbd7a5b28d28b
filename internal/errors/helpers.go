package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// GetFieldErrors returns the per-field messages attached by a ValidationBuilder
func GetFieldErrors(err error) map[string][]string {
	fields, _ := GetMeta(err)[metaValidationErrors].(map[string][]string)
	return fields
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsMalformedExpression checks if an error is a malformed dice expression
func IsMalformedExpression(err error) bool {
	return GetCode(err) == CodeMalformedExpression
}

// IsUnknownSkill checks if an error is an unknown skill error
func IsUnknownSkill(err error) bool {
	return GetCode(err) == CodeUnknownSkill
}

// IsUnrecognizedRollToken checks if an error is an unrecognized roll token error
func IsUnrecognizedRollToken(err error) bool {
	return GetCode(err) == CodeUnrecognizedRollToken
}

// IsInvalidCharacter checks if an error is an invalid character error
func IsInvalidCharacter(err error) bool {
	return GetCode(err) == CodeInvalidCharacter
}
