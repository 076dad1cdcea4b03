package enums

import "fmt"

// SubmissionStatus captures the triage state of a checkout submission.
type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusCompleted SubmissionStatus = "completed"
	SubmissionStatusFlagged   SubmissionStatus = "flagged"
)

var validSubmissionStatuses = []SubmissionStatus{
	SubmissionStatusPending,
	SubmissionStatusCompleted,
	SubmissionStatusFlagged,
}

// String implements fmt.Stringer.
func (s SubmissionStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches a known SubmissionStatus.
func (s SubmissionStatus) IsValid() bool {
	for _, candidate := range validSubmissionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSubmissionStatus converts raw input into a SubmissionStatus.
func ParseSubmissionStatus(value string) (SubmissionStatus, error) {
	for _, candidate := range validSubmissionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid status %q", value)
}
