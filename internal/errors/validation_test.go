package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("level", "must be between 1 and 20")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: level: must be between 1 and 20; name: is required", ve.Error())

	err := ve.ToError(errors.CodeInvalidCharacter)
	s.Assert().Equal(errors.CodeInvalidCharacter, err.Code)
	s.Assert().Equal([]string{"is required"}, errors.GetFieldErrors(err)["name"])
}

func (s *ValidationTestSuite) TestBuilderDefaultsToInvalidArgument() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Repository").
		InvalidField("abilities", "missing wisdom")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Len(errors.GetFieldErrors(err), 2)
}

func (s *ValidationTestSuite) TestBuildWithCode() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 21, 1, 20, vb)

	err := vb.BuildWithCode(errors.CodeInvalidCharacter)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidCharacter(err))
	s.Assert().Equal([]string{"must be between 1 and 20"}, errors.GetFieldErrors(err)["level"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().False(vb.HasErrors())
	s.Assert().NoError(vb.Build())
	s.Assert().NoError(vb.BuildWithCode(errors.CodeInvalidCharacter))
}

func (s *ValidationTestSuite) TestValidators() {
	testCases := []struct {
		name      string
		validate  func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required ok", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "Mira", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "   ", vb) }, true},
		{"max length ok", func(vb *errors.ValidationBuilder) { errors.ValidateMaxLength("name", "abc", 3, vb) }, false},
		{"max length over", func(vb *errors.ValidationBuilder) { errors.ValidateMaxLength("name", "abcd", 3, vb) }, true},
		{"range low edge", func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 1, 1, 20, vb) }, false},
		{"range high edge", func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 20, 1, 20, vb) }, false},
		{"range below", func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 0, 1, 20, vb) }, true},
		{"min ok", func(vb *errors.ValidationBuilder) { errors.ValidateMin("hp_max", 1, 1, vb) }, false},
		{"min below", func(vb *errors.ValidationBuilder) { errors.ValidateMin("hp_max", 0, 1, vb) }, true},
		{"enum ok", func(vb *errors.ValidationBuilder) {
			errors.ValidateEnum("level", "info", []string{"debug", "info"}, vb)
		}, false},
		{"enum bad", func(vb *errors.ValidationBuilder) {
			errors.ValidateEnum("level", "loud", []string{"debug", "info"}, vb)
		}, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.validate(vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}
