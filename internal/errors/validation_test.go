package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := &errors.ValidationError{Fields: map[string][]string{
		"party":     {"is required"},
		"encounter": {"is required"},
	}}

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "party: is required")
	s.Assert().Contains(ve.Error(), "encounter: is required")

	err := ve.ToError()
	s.Require().NotNil(err)
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationErrorSortsFields() {
	ve := &errors.ValidationError{Fields: map[string][]string{
		"zeta":  {"last"},
		"alpha": {"first"},
	}}

	s.Assert().Equal("validation failed: alpha: first; zeta: last", ve.Error())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("party", "must not be empty").
		Fieldf("limit", "must be between %d and %d", 1, 100).
		RequiredField("entityID").
		InvalidField("strategy", "unknown strategy name")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "entityID: is required")
	s.Assert().Contains(err.Error(), "limit: must be between 1 and 100")
	s.Assert().Contains(err.Error(), "strategy: is invalid: unknown strategy name")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidationBuilderAccumulatesPerField() {
	vb := errors.NewValidationBuilder()
	vb.Field("limit", "must be positive").
		Field("limit", "must be an integer")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().Contains(err.Error(), "limit: must be positive, must be an integer")
}
