// Package feedback turns validation results into what a user sees.
//
// Live field checks map an input's current value to Untouched, Valid or
// Invalid using the checks from package fields. Empty input is Untouched so
// a fresh form shows no validity styling. FieldKindForInput and Triggers
// describe which inputs get a checker and on which DOM events:
//
//	kind, ok := feedback.FieldKindForInput("text", "fullName") // KindName, true
//	feedback.Triggers(kind)                                     // ["blur"]
//	feedback.StateFor(kind, "Jo").Class()                       // "invalid"
//
// Form errors are shown as a bulleted block. ShowErrorAlert hands the block
// to an Alerter and reports whether there was anything to show:
//
//	res := forms.PatientLogin(email, password)
//	if feedback.ShowErrorAlert(ctx, alerter, "Please fix the following errors", res.Errors) {
//		return
//	}
package feedback
