package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/dials/corenote/internal/logger"
)

var (
	// ErrFutureMeetingExists is returned when the latest meeting note is dated after today
	ErrFutureMeetingExists = errors.New("future meeting already exists")
	// ErrUserDeclined is returned when the operator declines a confirmation prompt
	ErrUserDeclined = errors.New("declined by user")
	// ErrAlreadyUpToDate is returned when the committed file already matches the rendered content
	ErrAlreadyUpToDate = errors.New("file already matches, nothing to do")
	// ErrMalformedPreviousDocument is returned when the previous note lacks a section marker
	ErrMalformedPreviousDocument = errors.New("malformed previous document")
	// ErrPreconditionMismatch is returned when the branch head moved between read and write
	ErrPreconditionMismatch = errors.New("branch head does not match expected revision")
	// ErrInvalidDate is returned for numerically out-of-range dates
	ErrInvalidDate = errors.New("invalid date")
	// ErrNoMeetings is returned when no note in the listing is a meeting note
	ErrNoMeetings = errors.New("no meeting notes found")
)

// ExternalCallError is a non-success response from one of the external services.
type ExternalCallError struct {
	Service    string
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *ExternalCallError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: error requesting %s %s: %s", e.Service, e.Method, e.URL, e.Body)
	}
	return fmt.Sprintf("%s: error requesting %s %s: %d\n%s", e.Service, e.Method, e.URL, e.StatusCode, e.Body)
}

// IsGraceful reports whether err is a deliberate early exit that should end the process successfully.
func IsGraceful(err error) bool {
	return errors.Is(err, ErrFutureMeetingExists) ||
		errors.Is(err, ErrUserDeclined) ||
		errors.Is(err, ErrAlreadyUpToDate)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
