package booking

import (
	"errors"
	"fmt"
)

var (
	errNoDates       = errors.New("no usable dates found")
	errReversedRange = errors.New("check-out is not after check-in")
)

// Failure codes carried by ExtractionError, one per unusable intent field.
const (
	CodeMissingRoomType       = "MISSING_ROOM_TYPE"
	CodeAmbiguousRoomType     = "AMBIGUOUS_ROOM_TYPE"
	CodeMissingOrInvalidDates = "MISSING_OR_INVALID_DATES"
	CodeInvalidDateRange      = "INVALID_DATE_RANGE"
	CodeMissingGuestCount     = "MISSING_GUEST_COUNT"
)

type FieldIssue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ExtractionError reports every intent field that could not be read from the
// request, not just the first one, together with the fields that were
// understood.
type ExtractionError struct {
	issues   []FieldIssue
	detected map[string]any
}

func newExtractionError() *ExtractionError {
	//nolint:exhaustruct
	return &ExtractionError{
		detected: make(map[string]any),
	}
}

func IsExtractionError(err error) *ExtractionError {
	if err == nil {
		return nil
	}

	var extractionError *ExtractionError

	if errors.As(err, &extractionError) {
		return extractionError
	}

	return nil
}

func (e *ExtractionError) issueCount() int {
	return len(e.issues)
}

func (e *ExtractionError) addIssue(field, code, msg string) {
	e.issues = append(e.issues, FieldIssue{Field: field, Code: code, Message: msg})
}

func (e *ExtractionError) addDetected(field string, value any) {
	e.detected[field] = value
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%+v", e.issues)
}

func (e *ExtractionError) Issues() []FieldIssue {
	return e.issues
}

// Codes lists the failure codes in field order.
func (e *ExtractionError) Codes() []string {
	codes := make([]string, 0, len(e.issues))

	for _, issue := range e.issues {
		codes = append(codes, issue.Code)
	}

	return codes
}

// Detected returns the fields that were extracted successfully, so a caller
// can show partial understanding next to the failures.
func (e *ExtractionError) Detected() map[string]any {
	return e.detected
}
