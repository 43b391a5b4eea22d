// Package fields holds the single-field checks used by the appointment forms:
// email shape, password length, phone digit count, person names and
// appointment dates.
//
// Each check comes in two flavours. The *Rule constructors return a
// validator.Rule carrying the user-facing message, ready to be combined into
// a form. The Is*/Validate* functions evaluate one value on its own and
// return a bool or a Result whose Message is populated on success as well.
//
//	if r := fields.ValidateName("Mary-Jane O'Brien"); !r.Valid {
//	    fmt.Println(r.Message)
//	}
//
// All functions are pure. Date checks read the wall clock only through
// ValidateAppointmentDate; use ValidateAppointmentDateAt or
// AppointmentDateRule to pin the clock.
package fields
