package formcheck_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/fields"
	"github.com/dmitrymomot/formguard/pkg/forms"
	"github.com/dmitrymomot/formguard/pkg/metrics"
	"github.com/dmitrymomot/formguard/pkg/ratelimiter"
	"github.com/dmitrymomot/formguard/pkg/requestid"
	"github.com/dmitrymomot/formguard/svc/formcheck"
)

var clinicNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

type envelope struct {
	Data  json.RawMessage      `json:"data"`
	Meta  map[string]any       `json:"meta"`
	Error *handler.ErrorDetail `json:"error"`
}

func newRouter(t *testing.T, opts ...formcheck.Option) http.Handler {
	t.Helper()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]formcheck.Option{
		formcheck.WithClock(func() time.Time { return clinicNow }),
		formcheck.WithLogger(quiet),
	}, opts...)

	return formcheck.Router(formcheck.RouterOptions{
		Service: formcheck.New(opts...),
		Logger:  quiet,
	})
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func datastarRequest(target, signals string) *http.Request {
	req := jsonRequest(http.MethodPost, target, signals)
	req.Header.Set("Datastar-Request", "true")
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestListForms(t *testing.T) {
	t.Parallel()

	rec := do(newRouter(t), httptest.NewRequest(http.MethodGet, "/forms", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	var defs []forms.Definition
	require.NoError(t, json.Unmarshal(env.Data, &defs))
	assert.EqualValues(t, len(forms.Kinds()), env.Meta["count"])
	require.Len(t, defs, len(forms.Kinds()))
	assert.Equal(t, forms.KindPatientLogin, defs[0].Kind)
	assert.Equal(t, []string{"email", "password"}, defs[0].Fields)
}

func TestFormSchema(t *testing.T) {
	t.Parallel()

	h := newRouter(t)

	t.Run("known form", func(t *testing.T) {
		rec := do(h, httptest.NewRequest(http.MethodGet, "/forms/add-department/schema", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/schema+json", rec.Header().Get("Content-Type"))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, "Add Department", doc["title"])
		assert.Contains(t, doc["properties"], "head")
	})

	t.Run("unknown form", func(t *testing.T) {
		rec := do(h, httptest.NewRequest(http.MethodGet, "/forms/billing/schema", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unknown_form", env.Error.Code)
	})
}

func TestValidateForm_JSON(t *testing.T) {
	t.Parallel()

	h := newRouter(t)

	t.Run("valid submission", func(t *testing.T) {
		rec := do(h, jsonRequest(http.MethodPost, "/forms/patient-login/validate",
			`{"email":"jane@example.com","password":"x"}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		env := decode(t, rec)
		assert.Nil(t, env.Error)
		var body formcheck.ValidationBody
		require.NoError(t, json.Unmarshal(env.Data, &body))
		assert.True(t, body.Valid)
		assert.Empty(t, body.Errors)
		assert.Empty(t, body.Display)
	})

	t.Run("invalid submission", func(t *testing.T) {
		rec := do(h, jsonRequest(http.MethodPost, "/forms/patient-registration/validate",
			`{"name":"Jo","email":"nope","phone":"","password":"123"}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

		env := decode(t, rec)
		var body formcheck.ValidationBody
		require.NoError(t, json.Unmarshal(env.Data, &body))
		assert.False(t, body.Valid)
		assert.Equal(t, []string{
			fields.MsgNameTooShort,
			forms.MsgEmailInvalid,
			forms.MsgPhoneRequired,
			fields.MsgPasswordTooShort,
		}, body.Errors)
		assert.True(t, strings.HasPrefix(body.Display, "• "+fields.MsgNameTooShort+"\n• "))

		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, []string{forms.MsgPhoneRequired}, env.Error.Details["phone"])
	})

	t.Run("missing keys are reported by the form rules", func(t *testing.T) {
		rec := do(h, jsonRequest(http.MethodPost, "/forms/admin-login/validate", `{}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body formcheck.ValidationBody
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, []string{forms.MsgEmailRequired, forms.MsgPasswordRequired}, body.Errors)
	})

	t.Run("booking uses the service clock", func(t *testing.T) {
		rec := do(h, jsonRequest(http.MethodPost, "/forms/appointment-booking/validate",
			`{"department":"cardiology","doctor":"dr-1","date":"2026-10-18","time":"10:00","symptoms":"chest pain"}`))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body formcheck.ValidationBody
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, []string{fields.MsgDateNotFuture}, body.Errors)
	})
}

func TestValidateForm_Rejected(t *testing.T) {
	t.Parallel()

	h := newRouter(t)

	tests := []struct {
		name   string
		req    *http.Request
		status int
		code   string
	}{
		{
			name:   "unknown form",
			req:    jsonRequest(http.MethodPost, "/forms/billing/validate", `{}`),
			status: http.StatusNotFound,
			code:   "unknown_form",
		},
		{
			name:   "unknown key",
			req:    jsonRequest(http.MethodPost, "/forms/patient-login/validate", `{"email":"a@b.co","password":"x","remember":true}`),
			status: http.StatusBadRequest,
			code:   "bad_request",
		},
		{
			name:   "non-string value",
			req:    jsonRequest(http.MethodPost, "/forms/patient-login/validate", `{"email":42}`),
			status: http.StatusBadRequest,
			code:   "bad_request",
		},
		{
			name:   "malformed json",
			req:    jsonRequest(http.MethodPost, "/forms/patient-login/validate", `{"email":`),
			status: http.StatusBadRequest,
			code:   "bad_request",
		},
		{
			name: "unsupported media type",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/forms/patient-login/validate", strings.NewReader("email=a"))
				r.Header.Set("Content-Type", "text/plain")
				return r
			}(),
			status: http.StatusUnsupportedMediaType,
			code:   "unsupported_media_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, tt.req)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestValidateForm_Form(t *testing.T) {
	t.Parallel()

	rec := do(newRouter(t), formRequest("/forms/add-department/validate", url.Values{
		"name":        {"AB"},
		"head":        {"X1"},
		"description": {""},
	}))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body formcheck.ValidationBody
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, []string{forms.MsgDepartmentNameTooShort, forms.MsgHeadInvalid}, body.Errors)
}

func TestValidateForm_DataStar(t *testing.T) {
	t.Parallel()

	h := newRouter(t)

	t.Run("invalid submission patches the error block", func(t *testing.T) {
		rec := do(h, datastarRequest("/forms/patient-login/validate",
			`{"email":"","password":"","theme":"dark"}`))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

		out := rec.Body.String()
		assert.Contains(t, out, "datastar-patch-elements")
		assert.Contains(t, out, `id="patient-login-errors"`)
		assert.Contains(t, out, "<li>"+forms.MsgEmailRequired+"</li>")
		assert.Contains(t, out, "datastar-patch-signals")
		assert.Contains(t, out, `"formValid":false`)
	})

	t.Run("valid submission clears the block", func(t *testing.T) {
		rec := do(h, datastarRequest("/forms/patient-login/validate",
			`{"email":"jane@example.com","password":"x"}`))
		require.Equal(t, http.StatusOK, rec.Code)

		out := rec.Body.String()
		assert.Contains(t, out, `class="form-errors" hidden`)
		assert.Contains(t, out, `"formValid":true`)
	})

	t.Run("errors become a toast", func(t *testing.T) {
		rec := do(h, datastarRequest("/forms/billing/validate", `{}`))
		out := rec.Body.String()
		assert.Contains(t, out, "datastar-patch-elements")
		assert.Contains(t, out, `class="toast toast-warning"`)
		assert.Contains(t, out, "unknown_form")
	})
}

func TestCheckField(t *testing.T) {
	t.Parallel()

	h := newRouter(t)

	tests := []struct {
		field string
		value string
		want  formcheck.FieldState
	}{
		{"email", "jane@example.com", formcheck.FieldState{Field: "email", State: "valid", Class: "valid"}},
		{"email", "  ", formcheck.FieldState{Field: "email", State: "untouched", Class: ""}},
		{"password", "12345", formcheck.FieldState{Field: "password", State: "invalid", Class: "invalid"}},
		{"phone", "(555) 123-4567", formcheck.FieldState{Field: "tel", State: "valid", Class: "valid"}},
		{"name", "O'Brien-Smith", formcheck.FieldState{Field: "name", State: "valid", Class: "valid"}},
	}

	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.value, func(t *testing.T) {
			body, err := json.Marshal(map[string]string{"value": tt.value})
			require.NoError(t, err)

			rec := do(h, jsonRequest(http.MethodPost, "/fields/"+tt.field+"/check", string(body)))
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got formcheck.FieldState
			require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("form body", func(t *testing.T) {
		rec := do(h, formRequest("/fields/email/check", url.Values{"value": {"nope"}}))
		require.Equal(t, http.StatusOK, rec.Code)

		var got formcheck.FieldState
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.Equal(t, "invalid", string(got.State))
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := do(h, jsonRequest(http.MethodPost, "/fields/zip/check", `{"value":"12345"}`))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "unknown_field", decode(t, rec).Error.Code)
	})

	t.Run("datastar signal", func(t *testing.T) {
		rec := do(h, datastarRequest("/fields/email/check", `{"value":"nope","emailState":"untouched"}`))
		require.Equal(t, http.StatusOK, rec.Code)

		out := rec.Body.String()
		assert.Contains(t, out, "datastar-patch-signals")
		assert.Contains(t, out, `"emailState":"invalid"`)
	})
}

func TestStateSignal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "telState", formcheck.StateSignal("tel"))
	assert.Equal(t, "add-doctor-errors", formcheck.ErrorsID(forms.KindAddDoctor))
}

func TestRouter_Plumbing(t *testing.T) {
	t.Parallel()

	collector := metrics.NewCollector()
	svc := formcheck.New(
		formcheck.WithClock(func() time.Time { return clinicNow }),
		formcheck.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		formcheck.WithMetrics(metrics.NewValidationMetrics(collector)),
	)
	h := formcheck.Router(formcheck.RouterOptions{
		Service:     svc,
		Environment: "staging",
		HTTPMetrics: metrics.NewHTTPMetrics(collector),
		Metrics:     collector.Handler(),
	})

	t.Run("health", func(t *testing.T) {
		rec := do(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("ready without checks", func(t *testing.T) {
		rec := do(h, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/forms", nil)
		req.Header.Set(requestid.Header, "abc-123")
		rec := do(h, req)
		assert.Equal(t, "abc-123", rec.Header().Get(requestid.Header))

		rec = do(h, httptest.NewRequest(http.MethodGet, "/forms", nil))
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("metrics", func(t *testing.T) {
		do(h, jsonRequest(http.MethodPost, "/forms/admin-login/validate", `{"email":"","password":""}`))
		do(h, jsonRequest(http.MethodPost, "/fields/email/check", `{"value":"jane@example.com"}`))

		rec := do(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		out := rec.Body.String()
		assert.Contains(t, out, `formguard_form_validations_total{form="admin-login",outcome="invalid"} 1`)
		assert.Contains(t, out, `formguard_form_field_errors_total{field="email",form="admin-login"} 1`)
		assert.Contains(t, out, `formguard_field_checks_total{field="email",state="valid"} 1`)
		assert.Contains(t, out, `route="/forms/{kind}/validate"`)
	})

	t.Run("unmatched route", func(t *testing.T) {
		rec := do(h, httptest.NewRequest(http.MethodGet, "/nowhere", bytes.NewReader(nil)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_Readiness(t *testing.T) {
	t.Parallel()

	h := formcheck.Router(formcheck.RouterOptions{
		Service: formcheck.New(formcheck.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))),
		Readiness: []func(context.Context) error{
			func(context.Context) error { return errors.New("redis down") },
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	rec := do(h, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", rec.Body.String())

	rec = do(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestCheckField_Throttled(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       1,
		RefillRate:     1,
		RefillInterval: time.Hour,
	})
	require.NoError(t, err)

	h := newRouter(t, formcheck.WithFieldCheckLimit(bucket))
	check := func() *httptest.ResponseRecorder {
		return do(h, jsonRequest(http.MethodPost, "/fields/name/check", `{"value":"Jane"}`))
	}

	assert.Equal(t, http.StatusOK, check().Code)

	rec := check()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "too_many_requests", decode(t, rec).Error.Code)

	// form validation is not throttled
	rec = do(h, jsonRequest(http.MethodPost, "/forms/admin-login/validate", `{}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
