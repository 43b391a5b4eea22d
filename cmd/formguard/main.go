// Command formguard serves the hospital form validators over HTTP and
// checks recorded submissions in batch.
//
//	formguard serve
//	formguard check -f submissions.yaml [-now 2026-10-18T10:00:00Z] [-q]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

const usage = `usage: formguard <command> [flags]

commands:
  serve   run the HTTP validation service (configured from the environment)
  check   validate recorded submissions from a YAML or JSON file
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitError
	}

	switch args[0] {
	case "serve":
		return runServe(ctx, args[1:], stderr)
	case "check":
		return runCheck(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "formguard: unknown command %q\n\n%s", args[0], usage)
		return exitError
	}
}
