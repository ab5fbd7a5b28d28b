// Package errors provides the structured error type used across rpg-sheet.
//
// Every error carries a Code, a user-facing message, an optional cause, and
// optional metadata. The CLI turns the code into an exit status and the
// terminal UI shows the message in its status line.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.MalformedExpressionf("invalid dice expression %q", token)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// # Domain Codes
//
// Besides the generic codes the package defines the four sheet and dice
// failures: CodeMalformedExpression, CodeUnknownSkill,
// CodeUnrecognizedRollToken and CodeInvalidCharacter. Each has a
// constructor and an Is helper:
//
//	if errors.IsUnrecognizedRollToken(err) {
//	    // prompt for another token
//	}
//
// # Validation Errors
//
// The validation builder gathers messages per field:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.BuildWithCode(errors.CodeInvalidCharacter); err != nil {
//	    return err
//	}
//
// The field messages are available through GetFieldErrors.
package errors
