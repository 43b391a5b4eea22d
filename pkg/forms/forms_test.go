package forms_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/fields"
	"github.com/dmitrymomot/formguard/pkg/forms"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

var clinicNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func TestLogins(t *testing.T) {
	t.Parallel()

	logins := map[string]func(email, password string) forms.Result{
		"patient": forms.PatientLogin,
		"doctor":  forms.DoctorLogin,
		"admin":   forms.AdminLogin,
	}

	for name, login := range logins {
		t.Run(name, func(t *testing.T) {
			t.Run("valid", func(t *testing.T) {
				res := login("user@hospital.org", "x")
				assert.True(t, res.Valid)
				assert.NotNil(t, res.Errors)
				assert.Empty(t, res.Errors)
				assert.NoError(t, res.Err())
			})

			t.Run("both missing", func(t *testing.T) {
				res := login("   ", "")
				assert.False(t, res.Valid)
				assert.Equal(t, []string{forms.MsgEmailRequired, forms.MsgPasswordRequired}, res.Errors)
			})

			t.Run("bad email shape", func(t *testing.T) {
				res := login("user@hospital", "secret")
				assert.Equal(t, []string{forms.MsgEmailInvalid}, res.Errors)
			})

			t.Run("email is not trimmed for the shape check", func(t *testing.T) {
				res := login(" user@hospital.org", "secret")
				assert.Equal(t, []string{forms.MsgEmailInvalid}, res.Errors)
			})

			t.Run("password length is not checked", func(t *testing.T) {
				assert.True(t, login("user@hospital.org", "1").Valid)
			})

			t.Run("whitespace password is present", func(t *testing.T) {
				assert.True(t, login("user@hospital.org", " ").Valid)
			})
		})
	}
}

func TestPatientRegistration(t *testing.T) {
	t.Parallel()

	t.Run("all empty yields one error per field in order", func(t *testing.T) {
		res := forms.PatientRegistration("", "", "", "")
		assert.False(t, res.Valid)
		assert.Equal(t, []string{
			forms.MsgFullNameRequired,
			forms.MsgEmailRequired,
			forms.MsgPhoneRequired,
			forms.MsgPasswordRequired,
		}, res.Errors)
	})

	t.Run("format errors", func(t *testing.T) {
		res := forms.PatientRegistration("John123", "john@", "555-1234", "abc")
		assert.Equal(t, []string{
			fields.MsgNameInvalidChar,
			forms.MsgEmailInvalid,
			forms.MsgPhoneInvalid,
			fields.MsgPasswordTooShort,
		}, res.Errors)
	})

	t.Run("short name", func(t *testing.T) {
		res := forms.PatientRegistration("Jo", "jo@hospital.org", "1234567890", "secret")
		assert.Equal(t, []string{fields.MsgNameTooShort}, res.Errors)
	})

	t.Run("valid", func(t *testing.T) {
		res := forms.PatientRegistration("Mary-Jane O'Brien", "mj@hospital.org", "(555) 123-4567", "secret")
		assert.True(t, res.Valid)
	})
}

func TestDoctorRegistration(t *testing.T) {
	t.Parallel()

	t.Run("all empty", func(t *testing.T) {
		res := forms.DoctorRegistration("", "", "", "", "")
		assert.Equal(t, []string{
			forms.MsgFullNameRequired,
			forms.MsgEmailRequired,
			forms.MsgSpecializationRequired,
			forms.MsgPhoneRequired,
			forms.MsgPasswordRequired,
		}, res.Errors)
	})

	t.Run("only specialization missing", func(t *testing.T) {
		res := forms.DoctorRegistration("Gregory House", "house@ppth.org", "", "6095550100", "vicodin")
		assert.Equal(t, []string{forms.MsgSpecializationRequired}, res.Errors)
	})

	t.Run("valid", func(t *testing.T) {
		res := forms.DoctorRegistration("Gregory House", "house@ppth.org", "diagnostics", "6095550100", "vicodin")
		assert.True(t, res.Valid)
	})
}

func TestAppointmentBookingAt(t *testing.T) {
	t.Parallel()

	t.Run("all empty", func(t *testing.T) {
		res := forms.AppointmentBookingAt("", "", "", "", "", clinicNow)
		assert.Equal(t, []string{
			forms.MsgDepartmentRequired,
			forms.MsgDoctorRequired,
			forms.MsgDateRequired,
			forms.MsgTimeRequired,
			forms.MsgSymptomsRequired,
		}, res.Errors)
	})

	t.Run("date window and short symptoms", func(t *testing.T) {
		res := forms.AppointmentBookingAt("cardiology", "dr-1", "2026-10-18", "09:00", " cold ", clinicNow)
		assert.Equal(t, []string{fields.MsgDateNotFuture, forms.MsgSymptomsTooShort}, res.Errors)
	})

	t.Run("too far ahead", func(t *testing.T) {
		res := forms.AppointmentBookingAt("cardiology", "dr-1", "2026-11-19", "09:00", "chest pain", clinicNow)
		assert.Equal(t, []string{fields.MsgDateTooFar}, res.Errors)
	})

	t.Run("unparseable date", func(t *testing.T) {
		res := forms.AppointmentBookingAt("cardiology", "dr-1", "soon", "09:00", "chest pain", clinicNow)
		assert.Equal(t, []string{fields.MsgDateUnparseable}, res.Errors)
	})

	t.Run("whitespace symptoms are missing", func(t *testing.T) {
		res := forms.AppointmentBookingAt("cardiology", "dr-1", "2026-10-25", "09:00", "   ", clinicNow)
		assert.Equal(t, []string{forms.MsgSymptomsRequired}, res.Errors)
	})

	t.Run("valid", func(t *testing.T) {
		res := forms.AppointmentBookingAt("cardiology", "dr-1", "2026-11-02", "09:00", "chest pain", clinicNow)
		assert.True(t, res.Valid)
	})
}

func TestAddDoctor(t *testing.T) {
	t.Parallel()

	t.Run("all empty", func(t *testing.T) {
		res := forms.AddDoctor("", "", "", "", "")
		assert.Equal(t, []string{
			forms.MsgDoctorNameRequired,
			forms.MsgEmailRequired,
			forms.MsgDepartmentRequired,
			forms.MsgExperienceRequired,
			forms.MsgQualificationRequired,
		}, res.Errors)
	})

	experience := []struct {
		value string
		ok    bool
	}{
		{"0", true},
		{"70", true},
		{"12.5", true},
		{"-1", false},
		{"71", false},
		{"ten", false},
		{"NaN", false},
	}
	for _, tt := range experience {
		t.Run("experience "+tt.value, func(t *testing.T) {
			res := forms.AddDoctor("Lisa Cuddy", "cuddy@ppth.org", "admin", tt.value, "MD")
			if tt.ok {
				assert.True(t, res.Valid, res.Errors)
				return
			}
			assert.Equal(t, []string{forms.MsgExperienceInvalid}, res.Errors)
		})
	}

	t.Run("whitespace experience is missing", func(t *testing.T) {
		res := forms.AddDoctor("Lisa Cuddy", "cuddy@ppth.org", "admin", "  ", "MD")
		assert.Equal(t, []string{forms.MsgExperienceRequired}, res.Errors)
	})
}

func TestAddDepartment(t *testing.T) {
	t.Parallel()

	t.Run("short name and invalid head", func(t *testing.T) {
		res := forms.AddDepartment("AB", "X1", "")
		require.Len(t, res.Errors, 2)
		assert.Equal(t, []string{forms.MsgDepartmentNameTooShort, forms.MsgHeadInvalid}, res.Errors)
	})

	t.Run("head charset failure is normalized", func(t *testing.T) {
		res := forms.AddDepartment("Cardiology", "Dr 42", "")
		assert.Equal(t, []string{forms.MsgHeadInvalid}, res.Errors)
	})

	t.Run("missing values", func(t *testing.T) {
		res := forms.AddDepartment(" ", "", "anything")
		assert.Equal(t, []string{forms.MsgDepartmentNameRequired, forms.MsgHeadRequired}, res.Errors)
	})

	t.Run("description is not checked", func(t *testing.T) {
		assert.True(t, forms.AddDepartment("Cardiology", "James Wilson", "").Valid)
	})
}

func TestResult_Details(t *testing.T) {
	t.Parallel()

	res := forms.PatientRegistration("", "bad", "1234567890", "secret")

	details := res.Details()
	assert.Equal(t, []string{forms.FieldName, forms.FieldEmail}, details.Fields())
	assert.Equal(t, "validation.required", details[0].Code)
	assert.Equal(t, "validation.email", details[1].Code)

	err := res.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, validator.ErrValidationFailed))

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, res.Errors, verrs.Messages())
}

func TestPurity(t *testing.T) {
	t.Parallel()

	first := forms.AddDepartment("AB", "X1", "")
	second := forms.AddDepartment("AB", "X1", "")
	assert.Equal(t, first, second)

	a := forms.AppointmentBookingAt("", "dr", "2026-10-20", "", "ok", clinicNow)
	b := forms.AppointmentBookingAt("", "dr", "2026-10-20", "", "ok", clinicNow)
	assert.Equal(t, a, b)
}
