package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/anmicius0/instructor-dashboard-api/internal/config"
)

// lmsClient is the resty-backed LMSClient. It is unexported so callers use the interface.
type lmsClient struct {
	*HTTPClient
}

// NewLMSClient creates an LMSClient for the LMS at baseURL authenticating with a service token.
func NewLMSClient(baseURL, token string, timeout time.Duration) LMSClient {
	return &lmsClient{
		HTTPClient: NewHTTPClient(baseURL, token, timeout),
	}
}

func (c *lmsClient) GetCourseWithAccess(ctx context.Context, username, courseID, level string) (*Course, error) {
	params := map[string]string{"course_id": courseID, "username": username, "level": level}
	resp, err := c.DoReq(ctx, http.MethodGet, "/api/course_access", nil, params)
	if err != nil {
		switch {
		case isNotFound(err):
			return nil, fmt.Errorf("get course '%s': %w", courseID, ErrCourseNotFound)
		case hasStatus(err, http.StatusForbidden):
			return nil, fmt.Errorf("get course '%s' with %s access for '%s': %w", courseID, level, username, ErrAccessDenied)
		}
		return nil, fmt.Errorf("get course '%s': %w", courseID, err)
	}
	var course Course
	if err := json.Unmarshal(resp.Bytes(), &course); err != nil {
		return nil, fmt.Errorf("get course '%s': failed to unmarshal response: %w", courseID, err)
	}
	return &course, nil
}

func (c *lmsClient) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	resp, err := c.DoReq(ctx, http.MethodGet, "/api/users", nil, map[string]string{"email": email})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("get user '%s': %w", email, ErrUserNotFound)
		}
		return nil, fmt.Errorf("get user '%s': %w", email, err)
	}
	var user User
	if err := json.Unmarshal(resp.Bytes(), &user); err != nil {
		return nil, fmt.Errorf("get user '%s': failed to unmarshal response: %w", email, err)
	}
	return &user, nil
}

func (c *lmsClient) EnrollEmail(ctx context.Context, courseID, email string, autoEnroll bool) (*EnrollmentChange, error) {
	body := map[string]any{"course_id": courseID, "email": email, "auto_enroll": autoEnroll}
	return c.changeEnrollment(ctx, "/api/enrollments/enroll", courseID, email, body)
}

func (c *lmsClient) UnenrollEmail(ctx context.Context, courseID, email string) (*EnrollmentChange, error) {
	body := map[string]any{"course_id": courseID, "email": email}
	return c.changeEnrollment(ctx, "/api/enrollments/unenroll", courseID, email, body)
}

func (c *lmsClient) changeEnrollment(ctx context.Context, endpoint, courseID, email string, body any) (*EnrollmentChange, error) {
	resp, err := c.DoReq(ctx, http.MethodPost, endpoint, body, nil)
	if err != nil {
		return nil, fmt.Errorf("%s '%s' in '%s': %w", strings.TrimPrefix(endpoint, "/api/enrollments/"), email, courseID, err)
	}
	var change EnrollmentChange
	if err := json.Unmarshal(resp.Bytes(), &change); err != nil {
		return nil, fmt.Errorf("%s '%s': failed to unmarshal response: %w", endpoint, email, err)
	}
	return &change, nil
}

func (c *lmsClient) ResetStudentAttempts(ctx context.Context, courseID, username, moduleStateKey string, deleteModule bool) error {
	body := map[string]any{
		"course_id":        courseID,
		"username":         username,
		"module_state_key": moduleStateKey,
		"delete_module":    deleteModule,
	}
	if _, err := c.DoReq(ctx, http.MethodPost, "/api/student_modules/reset", body, nil); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("reset attempts for '%s' on '%s': %w", username, moduleStateKey, ErrModuleNotFound)
		}
		return fmt.Errorf("reset attempts for '%s' on '%s': %w", username, moduleStateKey, err)
	}
	return nil
}

func (c *lmsClient) AllowAccess(ctx context.Context, courseID, username, rolename string) error {
	return c.changeAccess(ctx, "allow", courseID, username, rolename)
}

func (c *lmsClient) RevokeAccess(ctx context.Context, courseID, username, rolename string) error {
	return c.changeAccess(ctx, "revoke", courseID, username, rolename)
}

func (c *lmsClient) changeAccess(ctx context.Context, mode, courseID, username, rolename string) error {
	body := map[string]string{"course_id": courseID, "username": username, "rolename": rolename}
	if _, err := c.DoReq(ctx, http.MethodPost, "/api/course_roles/"+mode, body, nil); err != nil {
		return fmt.Errorf("%s '%s' for '%s' in '%s': %w", mode, rolename, username, courseID, err)
	}
	return nil
}

func (c *lmsClient) ListWithLevel(ctx context.Context, courseID, rolename string) ([]User, error) {
	params := map[string]string{"course_id": courseID, "rolename": rolename}
	resp, err := c.DoReq(ctx, http.MethodGet, "/api/course_roles", nil, params)
	if err != nil {
		return nil, fmt.Errorf("list '%s' members of '%s': %w", rolename, courseID, err)
	}
	return decodeUsers(resp.Bytes())
}

func (c *lmsClient) ListForumRoleMembers(ctx context.Context, courseID, rolename string) ([]User, error) {
	params := map[string]string{"course_id": courseID, "rolename": rolename}
	resp, err := c.DoReq(ctx, http.MethodGet, "/api/forum_roles", nil, params)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("list forum role '%s' of '%s': %w", rolename, courseID, ErrRoleNotFound)
		}
		return nil, fmt.Errorf("list forum role '%s' of '%s': %w", rolename, courseID, err)
	}
	return decodeUsers(resp.Bytes())
}

func (c *lmsClient) UpdateForumRoleMembership(ctx context.Context, courseID, username, rolename, mode string) error {
	body := map[string]string{"course_id": courseID, "username": username, "rolename": rolename, "mode": mode}
	if _, err := c.DoReq(ctx, http.MethodPost, "/api/forum_roles/membership", body, nil); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s forum role '%s' for '%s': %w", mode, rolename, username, ErrRoleNotFound)
		}
		return fmt.Errorf("%s forum role '%s' for '%s': %w", mode, rolename, username, err)
	}
	return nil
}

func (c *lmsClient) GradingContext(ctx context.Context, courseID string) (string, error) {
	resp, err := c.DoReq(ctx, http.MethodGet, "/api/analytics/grading_context", nil, map[string]string{"course_id": courseID})
	if err != nil {
		return "", fmt.Errorf("grading context for '%s': %w", courseID, err)
	}
	var out gradingContextResponse
	if err := json.Unmarshal(resp.Bytes(), &out); err != nil {
		return "", fmt.Errorf("grading context for '%s': failed to unmarshal response: %w", courseID, err)
	}
	return out.GradingConfigSummary, nil
}

func (c *lmsClient) EnrolledStudentProfiles(ctx context.Context, courseID string, features []string) ([]map[string]any, error) {
	params := map[string]string{"course_id": courseID, "features": strings.Join(features, ",")}
	resp, err := c.DoReq(ctx, http.MethodGet, "/api/analytics/enrolled_students", nil, params)
	if err != nil {
		return nil, fmt.Errorf("enrolled student profiles for '%s': %w", courseID, err)
	}
	var out studentProfilesResponse
	if err := json.Unmarshal(resp.Bytes(), &out); err != nil {
		return nil, fmt.Errorf("enrolled student profiles for '%s': failed to unmarshal response: %w", courseID, err)
	}
	if out.Students == nil {
		out.Students = []map[string]any{}
	}
	return out.Students, nil
}

func (c *lmsClient) ProfileDistribution(ctx context.Context, courseID, feature string) (*ProfileDistribution, error) {
	params := map[string]string{"course_id": courseID, "feature": feature}
	resp, err := c.DoReq(ctx, http.MethodGet, "/api/analytics/profile_distribution", nil, params)
	if err != nil {
		return nil, fmt.Errorf("distribution of '%s' for '%s': %w", feature, courseID, err)
	}
	var dist ProfileDistribution
	if err := json.Unmarshal(resp.Bytes(), &dist); err != nil {
		return nil, fmt.Errorf("distribution of '%s' for '%s': failed to unmarshal response: %w", feature, courseID, err)
	}
	return &dist, nil
}

// Dispatch submits the task to the LMS task processor.
func (c *lmsClient) Dispatch(ctx context.Context, task config.Task) error {
	if _, err := c.DoReq(ctx, http.MethodPost, "/api/instructor_tasks", newTaskPayload(task), nil); err != nil {
		return fmt.Errorf("submit task '%s' (%s): %w", task.ID, task.Type, err)
	}
	return nil
}

// TaskState reads the processor's state for a dispatched task. A task the LMS
// no longer knows about is reported as failed.
func (c *lmsClient) TaskState(ctx context.Context, task config.Task) (config.TaskState, error) {
	resp, err := c.DoReq(ctx, http.MethodGet, "/api/instructor_tasks/"+url.PathEscape(task.ID), nil, nil)
	if err != nil {
		if isNotFound(err) {
			return config.TaskStateFailure, nil
		}
		return "", fmt.Errorf("task status '%s': %w", task.ID, err)
	}
	var out taskStatusResponse
	if err := json.Unmarshal(resp.Bytes(), &out); err != nil {
		return "", fmt.Errorf("task status '%s': failed to unmarshal response: %w", task.ID, err)
	}
	state, err := config.ParseTaskState(out.TaskState)
	if err != nil {
		return "", fmt.Errorf("task status '%s': %w", task.ID, err)
	}
	return state, nil
}

func decodeUsers(data []byte) ([]User, error) {
	users := make([]User, 0)
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users: %w", err)
	}
	return users, nil
}

func newTaskPayload(task config.Task) taskPayload {
	return taskPayload{
		TaskID:    task.ID,
		TaskType:  string(task.Type),
		CourseID:  task.CourseID,
		TaskInput: task.Input,
		Requester: task.Requester,
	}
}
