package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/shreeramghimire/salmonometer/internal/logger"
	"github.com/shreeramghimire/salmonometer/internal/validation"
)

// Format formats an error message with a consistent "Error: " prefix.
// Configuration errors list one problem per line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	var cfgErr *validation.ConfigurationError
	if stderrors.As(err, &cfgErr) && len(cfgErr.Issues) > 1 {
		var b strings.Builder
		b.WriteString("Error: invalid session configuration:")
		for _, issue := range cfgErr.Issues {
			b.WriteString("\n  - ")
			b.WriteString(issue.Description)
		}
		return b.String()
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
