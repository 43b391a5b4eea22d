package forms

import "time"

// Payload is a typed form submission.
type Payload interface {
	Validate() Result
	// ValidateAt pins the clock for forms with a date window; others ignore now.
	ValidateAt(now time.Time) Result
}

type PatientLoginForm struct {
	Email    string `form:"email" json:"email" yaml:"email" jsonschema:"title=Email address"`
	Password string `form:"password" json:"password" yaml:"password" jsonschema:"title=Password"`
}

func (f PatientLoginForm) Validate() Result { return PatientLogin(f.Email, f.Password) }
func (f PatientLoginForm) ValidateAt(_ time.Time) Result { return f.Validate() }

type DoctorLoginForm struct {
	Email    string `form:"email" json:"email" yaml:"email" jsonschema:"title=Email address"`
	Password string `form:"password" json:"password" yaml:"password" jsonschema:"title=Password"`
}

func (f DoctorLoginForm) Validate() Result { return DoctorLogin(f.Email, f.Password) }
func (f DoctorLoginForm) ValidateAt(_ time.Time) Result { return f.Validate() }

type AdminLoginForm struct {
	Email    string `form:"email" json:"email" yaml:"email" jsonschema:"title=Email address"`
	Password string `form:"password" json:"password" yaml:"password" jsonschema:"title=Password"`
}

func (f AdminLoginForm) Validate() Result { return AdminLogin(f.Email, f.Password) }
func (f AdminLoginForm) ValidateAt(_ time.Time) Result { return f.Validate() }

type PatientRegistrationForm struct {
	Name     string `form:"name" json:"name" yaml:"name" jsonschema:"title=Full name"`
	Email    string `form:"email" json:"email" yaml:"email" jsonschema:"title=Email address"`
	Phone    string `form:"phone" json:"phone" yaml:"phone" jsonschema:"title=Phone number"`
	Password string `form:"password" json:"password" yaml:"password" jsonschema:"title=Password"`
}

func (f PatientRegistrationForm) Validate() Result {
	return PatientRegistration(f.Name, f.Email, f.Phone, f.Password)
}
func (f PatientRegistrationForm) ValidateAt(_ time.Time) Result { return f.Validate() }

type DoctorRegistrationForm struct {
	Name           string `form:"name" json:"name" yaml:"name" jsonschema:"title=Full name"`
	Email          string `form:"email" json:"email" yaml:"email" jsonschema:"title=Email address"`
	Specialization string `form:"specialization" json:"specialization" yaml:"specialization" jsonschema:"title=Specialization"`
	Phone          string `form:"phone" json:"phone" yaml:"phone" jsonschema:"title=Phone number"`
	Password       string `form:"password" json:"password" yaml:"password" jsonschema:"title=Password"`
}

func (f DoctorRegistrationForm) Validate() Result {
	return DoctorRegistration(f.Name, f.Email, f.Specialization, f.Phone, f.Password)
}
func (f DoctorRegistrationForm) ValidateAt(_ time.Time) Result { return f.Validate() }

type AppointmentBookingForm struct {
	Department string `form:"department" json:"department" yaml:"department" jsonschema:"title=Department"`
	Doctor     string `form:"doctor" json:"doctor" yaml:"doctor" jsonschema:"title=Doctor"`
	Date       string `form:"date" json:"date" yaml:"date" jsonschema:"title=Appointment date,description=YYYY-MM-DD or YYYY-MM-DDTHH:MM"`
	Time       string `form:"time" json:"time" yaml:"time" jsonschema:"title=Time slot"`
	Symptoms   string `form:"symptoms" json:"symptoms" yaml:"symptoms" jsonschema:"title=Symptoms or reason for visit"`
}

func (f AppointmentBookingForm) Validate() Result { return f.ValidateAt(time.Now()) }

func (f AppointmentBookingForm) ValidateAt(now time.Time) Result {
	return AppointmentBookingAt(f.Department, f.Doctor, f.Date, f.Time, f.Symptoms, now)
}

type AddDoctorForm struct {
	Name          string `form:"name" json:"name" yaml:"name" jsonschema:"title=Doctor name"`
	Email         string `form:"email" json:"email" yaml:"email" jsonschema:"title=Email address"`
	Department    string `form:"department" json:"department" yaml:"department" jsonschema:"title=Department"`
	Experience    string `form:"experience" json:"experience" yaml:"experience" jsonschema:"title=Years of experience"`
	Qualification string `form:"qualification" json:"qualification" yaml:"qualification" jsonschema:"title=Qualification"`
}

func (f AddDoctorForm) Validate() Result {
	return AddDoctor(f.Name, f.Email, f.Department, f.Experience, f.Qualification)
}
func (f AddDoctorForm) ValidateAt(_ time.Time) Result { return f.Validate() }

type AddDepartmentForm struct {
	Name        string `form:"name" json:"name" yaml:"name" jsonschema:"title=Department name"`
	Head        string `form:"head" json:"head" yaml:"head" jsonschema:"title=Department head"`
	Description string `form:"description" json:"description" yaml:"description" jsonschema:"title=Description"`
}

func (f AddDepartmentForm) Validate() Result {
	return AddDepartment(f.Name, f.Head, f.Description)
}
func (f AddDepartmentForm) ValidateAt(_ time.Time) Result { return f.Validate() }
