package service

import (
	"context"

	"github.com/anmicius0/instructor-dashboard-api/internal/client"
	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/stretchr/testify/mock"
)

// MockLMSClient is a mock implementation of client.LMSClient
type MockLMSClient struct {
	mock.Mock
}

func (m *MockLMSClient) GetCourseWithAccess(ctx context.Context, username, courseID, level string) (*client.Course, error) {
	args := m.Called(ctx, username, courseID, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Course), args.Error(1)
}

func (m *MockLMSClient) GetUserByEmail(ctx context.Context, email string) (*client.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.User), args.Error(1)
}

func (m *MockLMSClient) EnrollEmail(ctx context.Context, courseID, email string, autoEnroll bool) (*client.EnrollmentChange, error) {
	args := m.Called(ctx, courseID, email, autoEnroll)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.EnrollmentChange), args.Error(1)
}

func (m *MockLMSClient) UnenrollEmail(ctx context.Context, courseID, email string) (*client.EnrollmentChange, error) {
	args := m.Called(ctx, courseID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.EnrollmentChange), args.Error(1)
}

func (m *MockLMSClient) ResetStudentAttempts(ctx context.Context, courseID, username, moduleStateKey string, deleteModule bool) error {
	return m.Called(ctx, courseID, username, moduleStateKey, deleteModule).Error(0)
}

func (m *MockLMSClient) AllowAccess(ctx context.Context, courseID, username, rolename string) error {
	return m.Called(ctx, courseID, username, rolename).Error(0)
}

func (m *MockLMSClient) RevokeAccess(ctx context.Context, courseID, username, rolename string) error {
	return m.Called(ctx, courseID, username, rolename).Error(0)
}

func (m *MockLMSClient) ListWithLevel(ctx context.Context, courseID, rolename string) ([]client.User, error) {
	args := m.Called(ctx, courseID, rolename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.User), args.Error(1)
}

func (m *MockLMSClient) ListForumRoleMembers(ctx context.Context, courseID, rolename string) ([]client.User, error) {
	args := m.Called(ctx, courseID, rolename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.User), args.Error(1)
}

func (m *MockLMSClient) UpdateForumRoleMembership(ctx context.Context, courseID, username, rolename, mode string) error {
	return m.Called(ctx, courseID, username, rolename, mode).Error(0)
}

func (m *MockLMSClient) GradingContext(ctx context.Context, courseID string) (string, error) {
	args := m.Called(ctx, courseID)
	return args.String(0), args.Error(1)
}

func (m *MockLMSClient) EnrolledStudentProfiles(ctx context.Context, courseID string, features []string) ([]map[string]any, error) {
	args := m.Called(ctx, courseID, features)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockLMSClient) ProfileDistribution(ctx context.Context, courseID, feature string) (*client.ProfileDistribution, error) {
	args := m.Called(ctx, courseID, feature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.ProfileDistribution), args.Error(1)
}

func (m *MockLMSClient) Dispatch(ctx context.Context, task config.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockLMSClient) TaskState(ctx context.Context, task config.Task) (config.TaskState, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(config.TaskState), args.Error(1)
}
