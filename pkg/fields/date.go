package fields

import (
	"time"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

const (
	MsgDateUnparseable = "Please select a valid appointment date"
	MsgDateNotFuture   = "Please select a future date for your appointment"
	MsgDateTooFar      = "Appointments can only be booked up to 30 days in advance"
	MsgDateValid       = "Date is valid"
)

// BookingWindowDays is how far ahead of now an appointment may be booked.
const BookingWindowDays = 30

// AppointmentDateRule accepts dates strictly after today's midnight and no
// later than now plus BookingWindowDays.
//
// The lower bound is normalized to midnight while the upper bound is not:
// any time later today passes, but on day 30 only times up to now's
// time of day pass. Bare dates resolve to midnight in now's location.
func AppointmentDateRule(field, value string, now time.Time) validator.Rule {
	parsed, _ := validator.ParseDate(value, now.Location())

	return validator.Bail(
		validator.ValidDate(field, value, now.Location()).WithMessage(MsgDateUnparseable),
		validator.DateAfter(field, parsed, validator.StartOfDay(now)).WithMessage(MsgDateNotFuture),
		validator.DateNotAfter(field, parsed, now.AddDate(0, 0, BookingWindowDays)).WithMessage(MsgDateTooFar),
	)
}

// ValidateAppointmentDate checks value against the current wall clock.
func ValidateAppointmentDate(value string) Result {
	return ValidateAppointmentDateAt(value, time.Now())
}

// ValidateAppointmentDateAt is ValidateAppointmentDate with an explicit clock.
func ValidateAppointmentDateAt(value string, now time.Time) Result {
	return evaluate(AppointmentDateRule("date", value, now), MsgDateValid)
}
