package forms

import (
	"slices"
	"time"
)

// Kind identifies one of the supported forms.
type Kind string

const (
	KindPatientLogin        Kind = "patient-login"
	KindPatientRegistration Kind = "patient-registration"
	KindDoctorLogin         Kind = "doctor-login"
	KindDoctorRegistration  Kind = "doctor-registration"
	KindAdminLogin          Kind = "admin-login"
	KindAppointmentBooking  Kind = "appointment-booking"
	KindAddDoctor           Kind = "add-doctor"
	KindAddDepartment       Kind = "add-department"
)

// Definition describes a form: its title, the field names in check order,
// and how to build and check a payload.
type Definition struct {
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title"`
	Fields []string `json:"fields"`

	newPayload func() Payload
	fromValues func(map[string]string) Payload
}

// New returns a pointer to an empty payload struct, ready for decoding.
func (d Definition) New() Payload {
	return d.newPayload()
}

// FromValues builds a payload from a flat field map. Missing keys read as "".
func (d Definition) FromValues(values map[string]string) Payload {
	return d.fromValues(values)
}

func (d Definition) Validate(values map[string]string) Result {
	return d.FromValues(values).Validate()
}

func (d Definition) ValidateAt(values map[string]string, now time.Time) Result {
	return d.FromValues(values).ValidateAt(now)
}

var definitions = []Definition{
	{
		Kind:       KindPatientLogin,
		Title:      "Patient Login",
		Fields:     []string{FieldEmail, FieldPassword},
		newPayload: func() Payload { return &PatientLoginForm{} },
		fromValues: func(v map[string]string) Payload {
			return &PatientLoginForm{Email: v[FieldEmail], Password: v[FieldPassword]}
		},
	},
	{
		Kind:       KindPatientRegistration,
		Title:      "Patient Registration",
		Fields:     []string{FieldName, FieldEmail, FieldPhone, FieldPassword},
		newPayload: func() Payload { return &PatientRegistrationForm{} },
		fromValues: func(v map[string]string) Payload {
			return &PatientRegistrationForm{
				Name:     v[FieldName],
				Email:    v[FieldEmail],
				Phone:    v[FieldPhone],
				Password: v[FieldPassword],
			}
		},
	},
	{
		Kind:       KindDoctorLogin,
		Title:      "Doctor Login",
		Fields:     []string{FieldEmail, FieldPassword},
		newPayload: func() Payload { return &DoctorLoginForm{} },
		fromValues: func(v map[string]string) Payload {
			return &DoctorLoginForm{Email: v[FieldEmail], Password: v[FieldPassword]}
		},
	},
	{
		Kind:       KindDoctorRegistration,
		Title:      "Doctor Registration",
		Fields:     []string{FieldName, FieldEmail, FieldSpecialization, FieldPhone, FieldPassword},
		newPayload: func() Payload { return &DoctorRegistrationForm{} },
		fromValues: func(v map[string]string) Payload {
			return &DoctorRegistrationForm{
				Name:           v[FieldName],
				Email:          v[FieldEmail],
				Specialization: v[FieldSpecialization],
				Phone:          v[FieldPhone],
				Password:       v[FieldPassword],
			}
		},
	},
	{
		Kind:       KindAdminLogin,
		Title:      "Admin Login",
		Fields:     []string{FieldEmail, FieldPassword},
		newPayload: func() Payload { return &AdminLoginForm{} },
		fromValues: func(v map[string]string) Payload {
			return &AdminLoginForm{Email: v[FieldEmail], Password: v[FieldPassword]}
		},
	},
	{
		Kind:       KindAppointmentBooking,
		Title:      "Appointment Booking",
		Fields:     []string{FieldDepartment, FieldDoctor, FieldDate, FieldTime, FieldSymptoms},
		newPayload: func() Payload { return &AppointmentBookingForm{} },
		fromValues: func(v map[string]string) Payload {
			return &AppointmentBookingForm{
				Department: v[FieldDepartment],
				Doctor:     v[FieldDoctor],
				Date:       v[FieldDate],
				Time:       v[FieldTime],
				Symptoms:   v[FieldSymptoms],
			}
		},
	},
	{
		Kind:       KindAddDoctor,
		Title:      "Add Doctor",
		Fields:     []string{FieldName, FieldEmail, FieldDepartment, FieldExperience, FieldQualification},
		newPayload: func() Payload { return &AddDoctorForm{} },
		fromValues: func(v map[string]string) Payload {
			return &AddDoctorForm{
				Name:          v[FieldName],
				Email:         v[FieldEmail],
				Department:    v[FieldDepartment],
				Experience:    v[FieldExperience],
				Qualification: v[FieldQualification],
			}
		},
	},
	{
		Kind:       KindAddDepartment,
		Title:      "Add Department",
		Fields:     []string{FieldName, FieldHead, FieldDescription},
		newPayload: func() Payload { return &AddDepartmentForm{} },
		fromValues: func(v map[string]string) Payload {
			return &AddDepartmentForm{
				Name:        v[FieldName],
				Head:        v[FieldHead],
				Description: v[FieldDescription],
			}
		},
	},
}

// Kinds lists every form kind in a stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(definitions))
	for _, d := range definitions {
		kinds = append(kinds, d.Kind)
	}
	return kinds
}

// Definitions returns a copy of every form definition.
func Definitions() []Definition {
	return slices.Clone(definitions)
}

// Lookup finds the definition for kind.
func Lookup(kind Kind) (Definition, bool) {
	i := slices.IndexFunc(definitions, func(d Definition) bool { return d.Kind == kind })
	if i < 0 {
		return Definition{}, false
	}
	return definitions[i], true
}
