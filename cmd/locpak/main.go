// Command locpak packs and unpacks a game engine's localized-string
// database (spec.md S1). It reads a command script, one subcommand per
// line, from standard input: each line is split into an argv and dispatched
// through cobra against the single stringtable shared by the whole script
// (spec.md S6.1 — "a sequence of subcommands consumed left-to-right; later
// commands see mutations of earlier ones").
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/locpak/locpak/errs"
)

// classify maps cobra's plain-text dispatch errors onto the InputError
// sentinels spec.md S7 names ("unknown command", "too many arguments"), so
// callers using errors.Is against errs still work even though cobra itself
// doesn't expose typed errors for these cases.
func classify(err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "unknown command"):
		return fmt.Errorf("%w: %v", errs.ErrUnknownCommand, err)
	case strings.Contains(msg, "arg(s)"):
		return fmt.Errorf("%w: %v", errs.ErrTooManyArgs, err)
	default:
		return err
	}
}

func main() {
	logger := log.New(os.Stderr, "locpak: ", 0)

	a := newApp(logger)
	root := a.rootCommand()

	hadError := false

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		argv := strings.Fields(line)

		root.SetArgs(argv)

		if err := root.Execute(); err != nil {
			if errors.Is(err, errExit) {
				break
			}

			logger.Println(classify(err))

			hadError = true
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Println(err)

		hadError = true
	}

	if hadError {
		os.Exit(1)
	}
}
