package preference

import "context"

type PreferenceService interface {
	// SubmitPreference creates or replaces the employee's submission for the
	// given (year, month), refreshing the submission timestamp.
	SubmitPreference(ctx context.Context, req SubmitPreferenceRequest) (PreferenceResponse, error)

	GetPreference(ctx context.Context, employeeID string, year, month int) (PreferenceResponse, error)
	ListPreferencesByPeriod(ctx context.Context, year, month int) ([]PreferenceResponse, error)

	// GetSubmissionStatus cross-references the employee roster against the
	// submissions for a period.
	GetSubmissionStatus(ctx context.Context, year, month int) (SubmissionStatusReport, error)

	DeletePreference(ctx context.Context, id string) error
}
