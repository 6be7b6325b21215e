package client

import (
	"context"

	"github.com/anmicius0/instructor-dashboard-api/internal/config"
)

// CourseAccessClient resolves a course for a requester holding at least the given
// access level ("staff" or "instructor").
type CourseAccessClient interface {
	GetCourseWithAccess(ctx context.Context, username, courseID, level string) (*Course, error)
}

// UserClient looks up LMS accounts.
type UserClient interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// EnrollmentClient changes enrollments and per-student problem state.
type EnrollmentClient interface {
	EnrollEmail(ctx context.Context, courseID, email string, autoEnroll bool) (*EnrollmentChange, error)
	UnenrollEmail(ctx context.Context, courseID, email string) (*EnrollmentChange, error)
	ResetStudentAttempts(ctx context.Context, courseID, username, moduleStateKey string, deleteModule bool) error
}

// AccessClient manages course staff roles and forum roles.
type AccessClient interface {
	AllowAccess(ctx context.Context, courseID, username, rolename string) error
	RevokeAccess(ctx context.Context, courseID, username, rolename string) error
	ListWithLevel(ctx context.Context, courseID, rolename string) ([]User, error)
	ListForumRoleMembers(ctx context.Context, courseID, rolename string) ([]User, error)
	UpdateForumRoleMembership(ctx context.Context, courseID, username, rolename, mode string) error
}

// AnalyticsClient fetches course analytics computed by the LMS.
type AnalyticsClient interface {
	GradingContext(ctx context.Context, courseID string) (string, error)
	EnrolledStudentProfiles(ctx context.Context, courseID string, features []string) ([]map[string]any, error)
	ProfileDistribution(ctx context.Context, courseID, feature string) (*ProfileDistribution, error)
}

// TaskDispatcher hands a recorded task to the background task processor and
// reports where the processor has got to with it.
type TaskDispatcher interface {
	Dispatch(ctx context.Context, task config.Task) error
	TaskState(ctx context.Context, task config.Task) (config.TaskState, error)
}

// LMSClient is everything the dashboard asks of the LMS.
// Use NewLMSClient to obtain an implementation.
type LMSClient interface {
	CourseAccessClient
	UserClient
	EnrollmentClient
	AccessClient
	AnalyticsClient
	TaskDispatcher
}
