// Package validator builds declarative checks out of small Rule values.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply evaluates rules in order and aggregates every failure in
// a ValidationErrors value, which implements error:
//
//	err := validator.Apply(
//		validator.RequiredString("results[0].name.first", rec.Name.First),
//		validator.LenString("results[0].nat", rec.Nat, 2),
//		validator.MinNum("results[0].dob.age", rec.Dob.Age, 0),
//	)
//	if validator.IsValidationError(err) {
//		// inspect validator.ExtractValidationErrors(err)
//	}
//
// Rules carry a translation key and values alongside the English message so
// callers can localize them. The package is stateless and goroutine-safe.
package validator
