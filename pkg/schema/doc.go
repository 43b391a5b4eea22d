// Package schema publishes a JSON Schema for every form payload and checks
// JSON bodies against it before they are decoded.
//
// Schemas are reflected from the payload structs in package forms with
// github.com/invopop/jsonschema and compiled with
// github.com/santhosh-tekuri/jsonschema/v5. Both steps are cached per form
// kind, so a Registry is meant to be shared.
//
// The schema only pins the shape of a body: an object whose known keys
// hold strings, with no extra keys. Missing keys are allowed because the
// form checks report them with the user-facing "is required" messages.
//
//	reg := schema.NewRegistry()
//	if err := reg.Validate(forms.KindPatientLogin, body); err != nil {
//		var ve *schema.ViolationError
//		if errors.As(err, &ve) {
//			// ve.Violations lists field and message pairs
//		}
//	}
package schema
