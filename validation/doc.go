// Package validation provides input validation utilities for neto.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type Settings struct {
//	    Name string `mapstructure:"name" validate:"max=64"`
//	}
//	err := validation.Validate(settings)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Present("base_url", baseURL != nil).Present("headers", headersSet)
//	err := v.Validate()
package validation
