package formcheck

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/forms"
	"github.com/dmitrymomot/formguard/pkg/schema"
)

// ErrorsID is the element id of the error block of a form.
func ErrorsID(kind forms.Kind) string {
	return string(kind) + "-errors"
}

// errorBlock renders the messages of res as a list. A valid result renders
// an empty, hidden block so earlier messages are cleared.
func errorBlock(kind forms.Kind, res forms.Result) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="` + templ.EscapeString(ErrorsID(kind)) + `" class="form-errors"`)
		if res.Valid {
			b.WriteString(` hidden></div>`)
			_, err := io.WriteString(w, b.String())
			return err
		}
		b.WriteString(` role="alert"><ul>`)
		for _, msg := range res.Errors {
			b.WriteString("<li>" + templ.EscapeString(msg) + "</li>")
		}
		b.WriteString("</ul></div>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func errorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="toast toast-`+templ.EscapeString(p.Type)+
				`" role="status" data-request-id="`+templ.EscapeString(p.RequestID)+`">`+
				templ.EscapeString(p.Message)+`</div>`)
		return err
	})
}

type schemaResponse struct {
	registry *schema.Registry
	kind     forms.Kind
}

func (s schemaResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	raw, err := s.registry.Schema(s.kind)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(raw)
	return err
}
