// Package forms checks the hospital appointment forms: patient, doctor and
// admin logins, patient and doctor registration, appointment booking, and the
// admin forms for adding doctors and departments.
//
// Every form runs a fixed sequence of per-field chains. Inside a field the
// required check short-circuits the format checks, so each field contributes
// at most one message. Across fields nothing short-circuits: the Result lists
// every problem in field order.
//
//	res := forms.PatientRegistration(name, email, phone, password)
//	if !res.Valid {
//	    for _, msg := range res.Errors {
//	        fmt.Println(msg)
//	    }
//	}
//
// The same checks are reachable through typed payloads (PatientLoginForm and
// friends) and through the registry (Kinds, Lookup), which adapters use to
// decode submissions by form kind.
package forms
