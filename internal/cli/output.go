package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chmielowski/baggage/internal/cli/styles"
	"github.com/chmielowski/baggage/internal/models"
	"github.com/chmielowski/baggage/internal/services/item"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs a successful operation result. Quiet mode prints only the
// ID when data has one; human mode prints message.
func (f *OutputFormatter) Success(data interface{}, message string) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	_, err := fmt.Fprintln(f.out(), styles.SuccessText("✓ "+message))
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it wrapped with the matching exit code.
func (f *OutputFormatter) Fail(err error) error {
	code, exit, suggestion := classify(err)
	_ = f.ErrorWithSuggestion(code, err.Error(), suggestion)
	return &ExitCodeError{Code: exit, Err: err, Reported: true}
}

// classify maps domain errors to an error code, exit code and hint
func classify(err error) (code string, exit int, suggestion string) {
	var exitErr *ExitCodeError
	switch {
	case errors.As(err, &exitErr) && exitErr.Code == ExitUsage:
		return "USAGE_ERROR", ExitUsage, "Run with --help to see usage"
	case errors.Is(err, models.ErrItemNotFound):
		return "ITEM_NOT_FOUND", ExitNotFound, "List items with: baggage list"
	case errors.Is(err, models.ErrNothingToUndo):
		return "NOTHING_TO_UNDO", ExitNotFound, ""
	case errors.Is(err, item.ErrEmptyName),
		errors.Is(err, item.ErrNameTooLong),
		errors.Is(err, item.ErrInvalidItemID):
		return "VALIDATION_ERROR", ExitValidation, ""
	default:
		return "ERROR", ExitError, ""
	}
}
