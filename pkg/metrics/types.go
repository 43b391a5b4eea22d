package metrics

// Metric names follow formguard_{component}_{metric}_{unit}.
const (
	MetricValidationsTotal      = "formguard_form_validations_total"
	MetricValidationErrorsTotal = "formguard_form_field_errors_total"
	MetricFieldChecksTotal      = "formguard_field_checks_total"
	MetricHTTPRequestDuration   = "formguard_http_request_duration_seconds"
)

const (
	LabelForm    = "form"
	LabelField   = "field"
	LabelOutcome = "outcome"
	LabelState   = "state"
	LabelRoute   = "route"
	LabelMethod  = "method"
	LabelStatus  = "status"
)

const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)
