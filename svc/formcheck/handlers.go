package formcheck

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/feedback"
	"github.com/dmitrymomot/formguard/pkg/forms"
	"github.com/dmitrymomot/formguard/pkg/logger"
)

// FormValidSignal is the DataStar signal carrying the outcome of a form submit.
const FormValidSignal = "formValid"

func (s *Service) listForms(_ handler.Context, _ struct{}) handler.Response {
	defs := forms.Definitions()
	return handler.JSON(defs, handler.WithJSONMeta(map[string]any{"count": len(defs)}))
}

func (s *Service) formSchema(_ handler.Context, req formRequest) handler.Response {
	return schemaResponse{registry: s.schemas, kind: req.Kind}
}

// ValidationBody is the data of a JSON validate response.
type ValidationBody struct {
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors"`
	Display string   `json:"display"`
}

func (s *Service) validateForm(ctx handler.Context, req submission) handler.Response {
	res := req.Payload.ValidateAt(s.now())
	s.metrics.RecordForm(req.Kind, res)
	s.logValidation(ctx, req.Kind, res)

	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendComponent(
				errorBlock(req.Kind, res),
				handler.WithTarget("#"+ErrorsID(req.Kind)),
				handler.WithPatchMode(handler.PatchOuter),
			); err != nil {
				return err
			}
			return stream.SendSignal(FormValidSignal, res.Valid)
		})
	}

	body := ValidationBody{
		Valid:   res.Valid,
		Errors:  res.Errors,
		Display: feedback.FormatErrors(res.Errors),
	}
	if res.Valid {
		return handler.JSON(body)
	}
	return handler.JSON(body,
		handler.WithJSONStatus(http.StatusUnprocessableEntity),
		handler.WithJSONError(handler.ValidationErrorFrom(res.Details())),
	)
}

// FieldState is the data of a JSON field check response.
type FieldState struct {
	Field string         `json:"field"`
	State feedback.State `json:"state"`
	Class string         `json:"class"`
}

// StateSignal names the DataStar signal holding the state of a field kind,
// e.g. "emailState".
func StateSignal(kind feedback.FieldKind) string {
	return string(kind) + "State"
}

func (s *Service) checkField(ctx handler.Context, req fieldCheck) handler.Response {
	state := feedback.StateFor(req.Kind, req.Value)
	s.metrics.RecordFieldCheck(string(req.Kind), string(state))
	s.log.DebugContext(ctx, "field checked",
		logger.Component("formcheck"),
		logger.Field(string(req.Kind)),
		slog.String("value", feedback.Redact(req.Kind, req.Value)),
		slog.String("state", string(state)),
	)

	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(func(stream handler.StreamContext) error {
			return stream.SendSignal(StateSignal(req.Kind), state)
		})
	}
	return handler.JSON(FieldState{
		Field: string(req.Kind),
		State: state,
		Class: state.Class(),
	})
}
