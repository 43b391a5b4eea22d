package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/formguard/pkg/forms"
)

// ValidationMetrics counts form validations and live field checks.
// A nil *ValidationMetrics records nothing.
type ValidationMetrics struct {
	validations *prometheus.CounterVec
	fieldErrors *prometheus.CounterVec
	fieldChecks *prometheus.CounterVec
}

func NewValidationMetrics(c *Collector) *ValidationMetrics {
	return &ValidationMetrics{
		validations: c.RegisterCounter(
			MetricValidationsTotal,
			"Form validations by form and outcome",
			[]string{LabelForm, LabelOutcome},
		),
		fieldErrors: c.RegisterCounter(
			MetricValidationErrorsTotal,
			"Failed field checks within form validations",
			[]string{LabelForm, LabelField},
		),
		fieldChecks: c.RegisterCounter(
			MetricFieldChecksTotal,
			"Live field checks by field kind and resulting state",
			[]string{LabelField, LabelState},
		),
	}
}

// RecordForm counts one validation of kind and each failing field.
func (m *ValidationMetrics) RecordForm(kind forms.Kind, res forms.Result) {
	if m == nil {
		return
	}
	outcome := OutcomeValid
	if !res.Valid {
		outcome = OutcomeInvalid
	}
	m.validations.WithLabelValues(string(kind), outcome).Inc()
	for _, e := range res.Details() {
		m.fieldErrors.WithLabelValues(string(kind), e.Field).Inc()
	}
}

func (m *ValidationMetrics) RecordFieldCheck(field, state string) {
	if m == nil {
		return
	}
	m.fieldChecks.WithLabelValues(field, state).Inc()
}
