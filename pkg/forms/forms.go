package forms

import (
	"time"

	"github.com/dmitrymomot/formguard/pkg/fields"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Required and format messages reported by the form checks.
// Field-level format messages (name, password, date) come from package fields.
const (
	MsgEmailRequired    = "Email address is required"
	MsgEmailInvalid     = fields.MsgEmailInvalid
	MsgPasswordRequired = "Password is required"
	MsgFullNameRequired = "Full name is required"
	MsgPhoneRequired    = "Phone number is required"
	MsgPhoneInvalid     = fields.MsgPhoneInvalid

	MsgSpecializationRequired = "Please select a specialization"

	MsgDepartmentRequired = "Please select a department"
	MsgDoctorRequired     = "Please select a doctor"
	MsgDateRequired       = "Please select an appointment date"
	MsgTimeRequired       = "Please select a time slot"
	MsgSymptomsRequired   = "Please provide your symptoms or reason for visit"
	MsgSymptomsTooShort   = "Please provide more details about your symptoms"

	MsgDoctorNameRequired    = "Doctor name is required"
	MsgExperienceRequired    = "Years of experience is required"
	MsgExperienceInvalid     = "Please enter a valid years of experience (0-70)"
	MsgQualificationRequired = "Qualification is required"

	MsgDepartmentNameRequired = "Department name is required"
	MsgDepartmentNameTooShort = "Department name must be at least 3 characters long"
	MsgHeadRequired           = "Department head is required"
	MsgHeadInvalid            = "Invalid department head name"
)

const (
	symptomsMinLen       = 5
	departmentNameMinLen = 3
	experienceMax        = 70
)

// Field names used in Result details and as payload keys.
const (
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldName           = "name"
	FieldPhone          = "phone"
	FieldSpecialization = "specialization"
	FieldDepartment     = "department"
	FieldDoctor         = "doctor"
	FieldDate           = "date"
	FieldTime           = "time"
	FieldSymptoms       = "symptoms"
	FieldExperience     = "experience"
	FieldQualification  = "qualification"
	FieldHead           = "head"
	FieldDescription    = "description"
)

// Result is the outcome of a form check. Errors holds at most one message per
// field, in the order the fields are checked, and is never nil.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`

	details validator.ValidationErrors
}

func newResult(errs validator.ValidationErrors) Result {
	return Result{
		Valid:   errs.IsEmpty(),
		Errors:  errs.Messages(),
		details: errs,
	}
}

// Details returns the failures keyed by field name.
func (r Result) Details() validator.ValidationErrors {
	return r.details
}

// Err returns nil for a valid result and validator.ValidationErrors otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return r.details
}

func check(rules ...validator.Rule) Result {
	return newResult(validator.Validate(rules...))
}

func emailRule(value string) validator.Rule {
	return validator.Bail(
		validator.RequiredString(FieldEmail, value).WithMessage(MsgEmailRequired),
		fields.EmailRule(FieldEmail, value),
	)
}

func passwordPresentRule(value string) validator.Rule {
	return validator.NotEmpty(FieldPassword, value).WithMessage(MsgPasswordRequired)
}

func passwordRule(value string) validator.Rule {
	return validator.Bail(
		passwordPresentRule(value),
		fields.PasswordRule(FieldPassword, value),
	)
}

func personNameRule(value, requiredMsg string) validator.Rule {
	return validator.Bail(
		validator.RequiredString(FieldName, value).WithMessage(requiredMsg),
		fields.NameRule(FieldName, value),
	)
}

func phoneRule(value string) validator.Rule {
	return validator.Bail(
		validator.RequiredString(FieldPhone, value).WithMessage(MsgPhoneRequired),
		fields.PhoneRule(FieldPhone, value),
	)
}

func selected(field, value, msg string) validator.Rule {
	return validator.NotEmpty(field, value).WithMessage(msg)
}

func login(email, password string) Result {
	return check(
		emailRule(email),
		passwordPresentRule(password),
	)
}

// PatientLogin checks email (required, then shape) and password (presence only).
func PatientLogin(email, password string) Result {
	return login(email, password)
}

// DoctorLogin has the same shape as PatientLogin.
func DoctorLogin(email, password string) Result {
	return login(email, password)
}

// AdminLogin has the same shape as PatientLogin.
func AdminLogin(email, password string) Result {
	return login(email, password)
}

func PatientRegistration(name, email, phone, password string) Result {
	return check(
		personNameRule(name, MsgFullNameRequired),
		emailRule(email),
		phoneRule(phone),
		passwordRule(password),
	)
}

func DoctorRegistration(name, email, specialization, phone, password string) Result {
	return check(
		personNameRule(name, MsgFullNameRequired),
		emailRule(email),
		selected(FieldSpecialization, specialization, MsgSpecializationRequired),
		phoneRule(phone),
		passwordRule(password),
	)
}

// AppointmentBooking checks a booking against the current wall clock.
func AppointmentBooking(department, doctor, date, timeSlot, symptoms string) Result {
	return AppointmentBookingAt(department, doctor, date, timeSlot, symptoms, time.Now())
}

// AppointmentBookingAt is AppointmentBooking with an explicit clock for the date window.
func AppointmentBookingAt(department, doctor, date, timeSlot, symptoms string, now time.Time) Result {
	return check(
		selected(FieldDepartment, department, MsgDepartmentRequired),
		selected(FieldDoctor, doctor, MsgDoctorRequired),
		validator.Bail(
			selected(FieldDate, date, MsgDateRequired),
			fields.AppointmentDateRule(FieldDate, date, now),
		),
		selected(FieldTime, timeSlot, MsgTimeRequired),
		validator.Bail(
			validator.RequiredString(FieldSymptoms, symptoms).WithMessage(MsgSymptomsRequired),
			validator.MinLenTrimmed(FieldSymptoms, symptoms, symptomsMinLen).WithMessage(MsgSymptomsTooShort),
		),
	)
}

// AddDoctor checks the admin form for a new doctor. Experience must be a
// plain decimal number of years between 0 and 70.
func AddDoctor(name, email, department, experience, qualification string) Result {
	return check(
		personNameRule(name, MsgDoctorNameRequired),
		emailRule(email),
		selected(FieldDepartment, department, MsgDepartmentRequired),
		validator.Bail(
			validator.RequiredString(FieldExperience, experience).WithMessage(MsgExperienceRequired),
			validator.NumberBetween(FieldExperience, experience, 0, experienceMax).WithMessage(MsgExperienceInvalid),
		),
		validator.RequiredString(FieldQualification, qualification).WithMessage(MsgQualificationRequired),
	)
}

// AddDepartment checks the admin form for a new department. Any failure of
// the head's name check is reported as MsgHeadInvalid. The description is
// free text and is not checked.
func AddDepartment(name, head, description string) Result {
	_ = description

	return check(
		validator.Bail(
			validator.RequiredString(FieldName, name).WithMessage(MsgDepartmentNameRequired),
			validator.MinLenTrimmed(FieldName, name, departmentNameMinLen).WithMessage(MsgDepartmentNameTooShort),
		),
		validator.Bail(
			validator.RequiredString(FieldHead, head).WithMessage(MsgHeadRequired),
			fields.NameRule(FieldHead, head).WithMessage(MsgHeadInvalid),
		),
	)
}
