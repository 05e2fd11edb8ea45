// Package errors provides structured error handling for the squad
// optimizer service.
//
// Errors carry a code, a user-facing message, an optional cause, and
// optional metadata:
//
//	err := errors.InvalidArgument("party is required")
//	err := errors.NotFoundf("analysis %q not found", id)
//
// Wrapping preserves the original code:
//
//	if err := repo.Get(ctx, in); err != nil {
//	    return errors.Wrap(err, "failed to load analysis")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) { ... }
//	status := errors.GetCode(err).HTTPStatus()
//
// The ValidationBuilder accumulates field-level problems into a single
// InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Estimator == nil {
//	    vb.RequiredField("Estimator")
//	}
//	return vb.Build()
//
// Handlers convert errors to HTTP responses with WriteError, which maps
// the code to a status and serializes {code, message} as JSON.
package errors
