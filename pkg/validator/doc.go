// Package validator provides small composable validation rules.
//
// Rules are built eagerly and checked by Apply, which returns a
// ValidationErrors value listing every failure in rule order:
//
//	err := validator.Apply(
//		validator.RequiredString("name", s.Name),
//		validator.RequiredString("email", s.Email),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//		missing := ve.Fields()
//	}
package validator
