package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formguard/pkg/batch"
	"github.com/dmitrymomot/formguard/pkg/feedback"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

func runCheck(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("f", "-", "submissions file, YAML or JSON; - reads stdin")
	at := fs.String("now", "", "clock for the appointment window: YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339")
	quiet := fs.Bool("q", false, "print only the summary line")
	verbose := fs.Bool("v", false, "log every checked submission to stderr")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	clock, err := parseClock(*at)
	if err != nil {
		fmt.Fprintf(stderr, "formguard: %v\n", err)
		return exitError
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithTextFormatter(),
		logger.WithLevel(level),
		logger.WithOutput(stderr),
	)

	file, err := batch.Load(*path)
	if err != nil {
		fmt.Fprintf(stderr, "formguard: %v\n", err)
		return exitError
	}

	report, err := batch.NewRunner(batch.WithClock(clock), batch.WithLogger(log)).Run(ctx, file)
	if err != nil {
		fmt.Fprintf(stderr, "formguard: %v\n", err)
		return exitError
	}

	if !*quiet {
		report.Alert(ctx, feedback.NewWriterAlerter(stdout))
	}
	fmt.Fprintf(stdout, "%d of %d submissions invalid\n", report.Invalid(), len(report.Outcomes))

	if !report.Valid() {
		return exitInvalid
	}
	return exitOK
}

// parseClock returns time.Now for an empty value and a fixed clock otherwise.
func parseClock(value string) (func() time.Time, error) {
	if value == "" {
		return time.Now, nil
	}
	if t, ok := validator.ParseDate(value, time.Local); ok {
		return func() time.Time { return t }, nil
	}
	return nil, fmt.Errorf("invalid -now value %q", value)
}
