// Package formcheck exposes the form validators over HTTP.
//
// JSON, urlencoded and multipart bodies are accepted. JSON bodies are first
// checked against the JSON Schema of the form payload, so unknown keys and
// non-string values are rejected with 400 before any rule runs. A failed
// validation answers 422 with the messages in data.errors and the same
// messages grouped by field in error.details:
//
//	POST /forms/patient-login/validate
//	{"email": "", "password": ""}
//
//	422 {"data":{"valid":false,"errors":["Email address is required","Password is required"],
//	     "display":"• Email address is required\n• Password is required"},
//	     "error":{"code":"validation_error","message":"Validation failed",
//	     "details":{"email":["Email address is required"],"password":["Password is required"]}}}
//
// DataStar requests are answered over SSE instead: a form submit patches the
// element #<kind>-errors and sets the formValid signal, and a field check
// sets the <kind>State signal ("emailState", "telState", ...) to valid,
// invalid or untouched.
//
// Router adds the request id, environment, metrics, health and /metrics
// plumbing around a Service.
package formcheck
