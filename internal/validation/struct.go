package validation

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance; validator instances cache
// struct metadata, so one per process is the intended usage.
var validate = validator.New()

// Struct runs tag-based validation on a request payload. Request types call
// this from their Validate() after normalizing fields.
func Struct(v any) error {
	return validate.Struct(v)
}
