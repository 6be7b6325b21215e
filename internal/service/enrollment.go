package service

import (
	"context"
	"fmt"

	"github.com/anmicius0/instructor-dashboard-api/internal/client"
	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"go.uber.org/zap"
)

const (
	ActionEnroll   = "enroll"
	ActionUnenroll = "unenroll"
)

// EnrollmentResult is the per-email outcome of an enrollment batch.
type EnrollmentResult = BatchItem[client.EnrollmentState]

// EnrollmentManager changes enrollments and per-student state for a course.
type EnrollmentManager struct {
	enrollment client.EnrollmentClient
	users      client.UserClient
}

// NewEnrollmentManager creates a new EnrollmentManager.
func NewEnrollmentManager(enrollment client.EnrollmentClient, users client.UserClient) *EnrollmentManager {
	return &EnrollmentManager{enrollment: enrollment, users: users}
}

// UpdateEnrollment enrolls or unenrolls every email. One email failing does not
// stop the others; see RunBatch.
func (em *EnrollmentManager) UpdateEnrollment(ctx context.Context, courseID, action string, emails []string, autoEnroll bool) ([]EnrollmentResult, error) {
	var change func(email string) (*client.EnrollmentChange, error)
	switch action {
	case ActionEnroll:
		change = func(email string) (*client.EnrollmentChange, error) {
			return em.enrollment.EnrollEmail(ctx, courseID, email, autoEnroll)
		}
	case ActionUnenroll:
		change = func(email string) (*client.EnrollmentChange, error) {
			return em.enrollment.UnenrollEmail(ctx, courseID, email)
		}
	default:
		return nil, invalidParameter("action", action)
	}

	results := RunBatch(emails, func(email string) (client.EnrollmentState, client.EnrollmentState, error) {
		c, err := change(email)
		if err != nil {
			return client.EnrollmentState{}, client.EnrollmentState{}, err
		}
		return c.Before, c.After, nil
	})

	utils.WithComponent("enrollment").Info("Enrollment batch processed",
		zap.String(utils.FieldCourseID, courseID),
		zap.String(utils.FieldAction, action),
		zap.Bool("auto_enroll", autoEnroll),
		zap.Int("total", len(results)),
		zap.Int("failed", CountFailed(results)))
	return results, nil
}

// ResetStudentAttempts resets one student's attempts on a problem, deleting the
// stored state entirely when deleteModule is set.
func (em *EnrollmentManager) ResetStudentAttempts(ctx context.Context, courseID, email, moduleStateKey string, deleteModule bool) error {
	user, err := em.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := em.enrollment.ResetStudentAttempts(ctx, courseID, user.Username, moduleStateKey, deleteModule); err != nil {
		return err
	}
	utils.WithComponent("enrollment").Info("Student attempts reset",
		zap.String(utils.FieldCourseID, courseID),
		zap.String(utils.FieldUsername, user.Username),
		zap.String(utils.FieldModuleKey, moduleStateKey),
		zap.Bool("delete_module", deleteModule))
	return nil
}

// StudentProgressURL resolves the student by email and returns their progress page path.
func (em *EnrollmentManager) StudentProgressURL(ctx context.Context, courseID, email string) (string, error) {
	user, err := em.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("progress url: %w", err)
	}
	return StudentProgressURL(courseID, user.ID), nil
}
