// internal/server/response_builder.go
package server

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/anmicius0/instructor-dashboard-api/internal/client"
	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/anmicius0/instructor-dashboard-api/internal/service"
)

// ResponseBuilder converts service results into response payloads.
type ResponseBuilder struct{}

func newResponseBuilder() *ResponseBuilder { return &ResponseBuilder{} }

// EnrollmentResultResponse is one email's entry in an enrollment response.
// Before and After are omitted for a failed email.
type EnrollmentResultResponse struct {
	Email  string                  `json:"email"`
	Before *client.EnrollmentState `json:"before,omitempty"`
	After  *client.EnrollmentState `json:"after,omitempty"`
	Error  bool                    `json:"error,omitempty"`
}

// UserInfo is the public view of a role member.
type UserInfo struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TaskFeatures is the listing view of a task. All values are strings.
type TaskFeatures struct {
	TaskType  string `json:"task_type"`
	TaskInput string `json:"task_input"`
	TaskID    string `json:"task_id"`
	Requester string `json:"requester"`
	Created   string `json:"created"`
	TaskState string `json:"task_state"`
}

func (rb *ResponseBuilder) BuildEnrollmentResults(results []service.EnrollmentResult) []EnrollmentResultResponse {
	out := make([]EnrollmentResultResponse, 0, len(results))
	for _, r := range results {
		if r.Failed {
			out = append(out, EnrollmentResultResponse{Email: r.Identifier, Error: true})
			continue
		}
		before, after := r.Before, r.After
		out = append(out, EnrollmentResultResponse{Email: r.Identifier, Before: &before, After: &after})
	}
	return out
}

func (rb *ResponseBuilder) BuildUserInfo(users []client.User) []UserInfo {
	out := make([]UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, UserInfo{
			Username:  u.Username,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		})
	}
	return out
}

func (rb *ResponseBuilder) BuildTaskFeatures(tasks []config.Task) []TaskFeatures {
	out := make([]TaskFeatures, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskFeatures{
			TaskType:  string(t.Type),
			TaskInput: t.Input,
			TaskID:    t.ID,
			Requester: t.Requester,
			Created:   t.CreatedAt.UTC().Format(time.RFC3339),
			TaskState: string(t.State),
		})
	}
	return out
}

// BuildCSV renders rows as CSV with header as the first line. Each row
// contributes the values of the header keys, in header order; absent and nil
// values become empty cells.
func (rb *ResponseBuilder) BuildCSV(header []string, rows []map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, key := range header {
			record[i] = csvCell(row[key])
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvCell(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
