// Package cli provides error handling utilities for CLI output.
package cli

import (
	"fmt"
	"os"

	agendaerrors "github.com/mfield/agenda/internal/errors"
)

// PrintError prints an error to stderr with appropriate formatting.
// If the error is an AgendaError, it uses the user-friendly format.
// Otherwise, it prints a simple error message.
func PrintError(err error) {
	if ae := agendaerrors.AsAgendaError(err); ae != nil {
		fmt.Fprintln(os.Stderr, ae.UserMessage())
		if verbose {
			fmt.Fprintf(os.Stderr, "\nCode: %s\n", ae.Code)
			if ae.Cause != nil {
				fmt.Fprintf(os.Stderr, "Cause: %v\n", ae.Cause)
			}
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
