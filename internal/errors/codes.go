package errors

// Code represents an error code
type Code string

// Generic error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// Character sheet and dice codes
const (
	// CodeMalformedExpression means a dice token does not match NdM[+/-K]
	CodeMalformedExpression Code = "MALFORMED_EXPRESSION"
	// CodeUnknownSkill means a skill name is outside the fixed catalog
	CodeUnknownSkill Code = "UNKNOWN_SKILL"
	// CodeUnrecognizedRollToken means a roll token is not an ability, skill, or dice expression
	CodeUnrecognizedRollToken Code = "UNRECOGNIZED_ROLL_TOKEN"
	// CodeInvalidCharacter means construction or mutation broke a character invariant
	CodeInvalidCharacter Code = "INVALID_CHARACTER"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI uses for the code.
// 2 is reserved for input the user can fix and retype.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeOutOfRange,
		CodeMalformedExpression, CodeUnknownSkill,
		CodeUnrecognizedRollToken, CodeInvalidCharacter:
		return 2
	case CodeNotFound:
		return 3
	case CodeAlreadyExists, CodeFailedPrecondition:
		return 4
	case CodeUnavailable:
		return 5
	case CodeCanceled:
		return 130
	default:
		return 1
	}
}
