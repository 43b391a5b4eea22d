package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formguard/pkg/feedback"
	"github.com/dmitrymomot/formguard/pkg/forms"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/metrics"
)

// Submission is one recorded form submission.
type Submission struct {
	Form   forms.Kind        `yaml:"form"`
	Label  string            `yaml:"label,omitempty"`
	Values map[string]string `yaml:"values"`
}

// Title names the submission in reports.
func (s Submission) Title(index int) string {
	if s.Label != "" {
		return s.Label
	}
	return fmt.Sprintf("#%d %s", index+1, s.Form)
}

// File is the document accepted by Decode. JSON documents decode too.
//
//	submissions:
//	  - form: patient-login
//	    label: empty login
//	    values:
//	      email: ""
//	      password: ""
type File struct {
	Submissions []Submission `yaml:"submissions"`
}

// Decode reads a submissions document. Unknown keys are rejected.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, errors.Join(ErrDecodeInput, err)
	}
	return f, nil
}

// Load decodes the submissions file at path; "-" reads stdin.
func Load(path string) (File, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return File{}, errors.Join(ErrReadInput, err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Outcome is the result of checking one submission.
type Outcome struct {
	Index      int          `json:"index"`
	Submission Submission   `json:"submission"`
	Result     forms.Result `json:"result"`
}

// Report collects outcomes in input order.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
}

// Invalid counts submissions that failed validation.
func (r Report) Invalid() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Result.Valid {
			n++
		}
	}
	return n
}

func (r Report) Valid() bool {
	return r.Invalid() == 0
}

// Alert shows one alert block per invalid submission and returns how many
// were shown.
func (r Report) Alert(ctx context.Context, a feedback.Alerter) int {
	shown := 0
	for _, o := range r.Outcomes {
		if feedback.ShowErrorAlert(ctx, a, o.Submission.Title(o.Index), o.Result.Errors) {
			shown++
		}
	}
	return shown
}

// Runner checks submissions against the form registry.
type Runner struct {
	now     func() time.Time
	log     *slog.Logger
	metrics *metrics.ValidationMetrics
}

type Option func(*Runner)

// WithClock pins the clock used by the appointment date window.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

func WithMetrics(m *metrics.ValidationMetrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		now: time.Now,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run checks every submission in order. An unknown form kind stops the run
// and returns the outcomes gathered so far.
func (r *Runner) Run(ctx context.Context, f File) (Report, error) {
	report := Report{Outcomes: make([]Outcome, 0, len(f.Submissions))}
	now := r.now()

	for i, sub := range f.Submissions {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		def, ok := forms.Lookup(sub.Form)
		if !ok {
			return report, fmt.Errorf("%w: submission %d: %q", ErrUnknownForm, i+1, sub.Form)
		}

		res := def.ValidateAt(sub.Values, now)
		r.metrics.RecordForm(sub.Form, res)
		r.log.DebugContext(ctx, "submission checked",
			logger.Component("batch"),
			logger.Form(string(sub.Form)),
			logger.Valid(res.Valid),
			logger.ErrorCount(len(res.Errors)),
		)

		report.Outcomes = append(report.Outcomes, Outcome{Index: i, Submission: sub, Result: res})
	}

	return report, nil
}
