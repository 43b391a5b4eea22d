package formcheck

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/feedback"
	"github.com/dmitrymomot/formguard/pkg/forms"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/metrics"
	"github.com/dmitrymomot/formguard/pkg/ratelimiter"
	"github.com/dmitrymomot/formguard/pkg/schema"
)

// Service serves form validation and live field checks over HTTP.
type Service struct {
	now          func() time.Time
	log          *slog.Logger
	metrics      *metrics.ValidationMetrics
	schemas      *schema.Registry
	errorHandler handler.ErrorHandler[handler.Context]
	fieldLimit   *ratelimiter.Bucket
}

type Option func(*Service)

// WithClock pins the clock used by the appointment date window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithMetrics(m *metrics.ValidationMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithSchemas(r *schema.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.schemas = r
		}
	}
}

// WithErrorHandler replaces the default handler, which answers DataStar
// requests with a toast and everything else with a JSON error.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithFieldCheckLimit throttles live field checks per client address.
func WithFieldCheckLimit(b *ratelimiter.Bucket) Option {
	return func(s *Service) {
		s.fieldLimit = b
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		now:     time.Now,
		log:     slog.Default(),
		schemas: schema.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorToast: errorToast,
		})
	}
	return s
}

// Handle returns the form and field routes:
//
//	GET  /forms
//	GET  /forms/{kind}/schema
//	POST /forms/{kind}/validate
//	POST /fields/{field}/check
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/forms", handler.Wrap(s.listForms,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Get("/forms/{kind}/schema", handler.Wrap(s.formSchema,
		handler.WithBinders[handler.Context, formRequest](
			binder.Path(chi.URLParam),
			requireForm,
		),
		handler.WithErrorHandler[handler.Context, formRequest](s.errorHandler),
	))

	r.Post("/forms/{kind}/validate", handler.Wrap(s.validateForm,
		handler.WithBinders[handler.Context, submission](
			binder.Path(chi.URLParam),
			s.bindSubmission,
		),
		handler.WithErrorHandler[handler.Context, submission](s.errorHandler),
	))

	var fieldRoutes chi.Router = r
	if s.fieldLimit != nil {
		fieldRoutes = r.With(ratelimiter.Middleware(s.fieldLimit,
			ratelimiter.WithLogger(s.log),
			ratelimiter.WithDenied(throttled),
		))
	}
	fieldRoutes.Post("/fields/{field}/check", handler.Wrap(s.checkField,
		handler.WithBinders[handler.Context, fieldCheck](
			binder.Path(chi.URLParam),
			requireFieldKind,
			handler.Body(binder.JSON(), binder.Form()),
		),
		handler.WithErrorHandler[handler.Context, fieldCheck](s.errorHandler),
	))

	return r
}

// throttled answers in the same JSON error shape as every other failure.
func throttled(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
	_ = handler.JSONError(ErrTooManyRequests).Render(w, r)
}

type formRequest struct {
	Kind forms.Kind `path:"kind"`
}

func requireForm(_ *http.Request, v any) error {
	req, ok := v.(*formRequest)
	if !ok {
		return fmt.Errorf("formcheck: unexpected bind target %T", v)
	}
	if _, ok := forms.Lookup(req.Kind); !ok {
		return ErrUnknownForm
	}
	return nil
}

// submission is a form payload resolved from the {kind} path segment.
type submission struct {
	Kind    forms.Kind    `path:"kind"`
	Payload forms.Payload `path:"-"`
}

// bindSubmission decodes the body into the payload type registered for the
// kind. JSON bodies are checked against the kind's schema before decoding.
func (s *Service) bindSubmission(r *http.Request, v any) error {
	req, ok := v.(*submission)
	if !ok {
		return fmt.Errorf("formcheck: unexpected bind target %T", v)
	}
	def, ok := forms.Lookup(req.Kind)
	if !ok {
		return ErrUnknownForm
	}
	req.Payload = def.New()
	return handler.Body(s.bindSchemaJSON(def.Kind), binder.Form())(r, req.Payload)
}

func (s *Service) bindSchemaJSON(kind forms.Kind) handler.Bind {
	return func(r *http.Request, v any) error {
		if mt := binder.MediaType(r); mt != binder.MediaJSON {
			return fmt.Errorf("%w: %s", binder.ErrBinderNotApplicable, mt)
		}
		body, err := binder.ReadBody(r, binder.DefaultMaxJSONSize)
		if err != nil {
			return err
		}
		if err := s.schemas.Validate(kind, body); err != nil {
			if errors.Is(err, schema.ErrCompileSchema) {
				return err
			}
			return fmt.Errorf("%w: %w", binder.ErrFailedToParseJSON, err)
		}
		return binder.DecodeJSON(body, v)
	}
}

// fieldCheck is a single live input check.
type fieldCheck struct {
	Field string             `path:"field" json:"-" form:"-"`
	Kind  feedback.FieldKind `path:"-" json:"-" form:"-"`
	Value string             `path:"-" json:"value" form:"value"`
}

func requireFieldKind(_ *http.Request, v any) error {
	req, ok := v.(*fieldCheck)
	if !ok {
		return fmt.Errorf("formcheck: unexpected bind target %T", v)
	}
	kind, ok := feedback.ParseFieldKind(req.Field)
	if !ok {
		return ErrUnknownField
	}
	req.Kind = kind
	return nil
}

func (s *Service) logValidation(ctx handler.Context, kind forms.Kind, res forms.Result) {
	s.log.DebugContext(ctx, "form validated",
		logger.Component("formcheck"),
		logger.Form(string(kind)),
		logger.Valid(res.Valid),
		logger.ErrorCount(len(res.Errors)),
	)
}
