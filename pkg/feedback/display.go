package feedback

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

const (
	bullet    = "• "
	separator = "\n" + bullet
)

// FormatErrors renders errs as a bulleted block, one message per line.
// An empty list renders as "".
func FormatErrors(errs []string) string {
	if len(errs) == 0 {
		return ""
	}
	return bullet + strings.Join(errs, separator)
}

// Alerter presents a blocking message to the user.
type Alerter interface {
	Alert(ctx context.Context, message string) error
}

// ShowErrorAlert shows "title:\n\n" followed by the formatted errors and
// reports whether anything was shown. Nothing is shown for an empty list.
// A failing alerter still counts as shown; its error is dropped.
func ShowErrorAlert(ctx context.Context, a Alerter, title string, errs []string) bool {
	if len(errs) == 0 {
		return false
	}
	_ = a.Alert(ctx, AlertMessage(title, errs))
	return true
}

// AlertMessage builds the text ShowErrorAlert presents.
func AlertMessage(title string, errs []string) string {
	return title + ":\n\n" + FormatErrors(errs)
}

// WriterAlerter writes each alert to w followed by a blank line.
type WriterAlerter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterAlerter(w io.Writer) *WriterAlerter {
	return &WriterAlerter{w: w}
}

func (a *WriterAlerter) Alert(_ context.Context, message string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, err := fmt.Fprintf(a.w, "%s\n\n", message)
	return err
}

// LogAlerter records alerts as warnings.
type LogAlerter struct {
	log *slog.Logger
}

// NewLogAlerter falls back to slog.Default when log is nil.
func NewLogAlerter(log *slog.Logger) *LogAlerter {
	if log == nil {
		log = slog.Default()
	}
	return &LogAlerter{log: log}
}

func (a *LogAlerter) Alert(ctx context.Context, message string) error {
	a.log.WarnContext(ctx, message,
		logger.Component("feedback"),
		logger.Event("alert"),
	)
	return nil
}
