package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"go.uber.org/zap"
	"resty.dev/v3"
)

const maxLoggedBody = 1000

// HTTPClient is a base HTTP client using resty for LMS API requests.
type HTTPClient struct {
	client *resty.Client
}

// HTTPError represents an error response from the LMS. Callers check StatusCode
// to translate 403/404 into domain errors.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// NewHTTPClient creates an HTTPClient sending a bearer service token and JSON headers.
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &HTTPClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json").
			SetHeader("Authorization", "Bearer "+token).
			SetTimeout(timeout),
	}
}

// DoReq performs a request and returns *HTTPError for any status >= 400.
func (c *HTTPClient) DoReq(ctx context.Context, method, endpoint string, body any, params map[string]string) (*resty.Response, error) {
	request := c.client.R().
		SetContext(ctx).
		SetQueryParams(params)
	if body != nil {
		request.SetBody(body)
	}

	logger := utils.WithComponent("lms_client")
	logger.Debug("HTTP request start",
		zap.String(utils.FieldMethod, method),
		zap.String("endpoint", endpoint))

	start := time.Now()
	response, err := request.Execute(method, endpoint)
	duration := time.Since(start)
	if err != nil {
		logger.Error("HTTP request failed",
			zap.String(utils.FieldMethod, method),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, err
	}

	if response.StatusCode() >= http.StatusBadRequest {
		responseBody := strings.TrimSpace(response.String())
		if len(responseBody) > maxLoggedBody {
			responseBody = responseBody[:maxLoggedBody] + "..."
		}
		fields := []zap.Field{
			zap.String(utils.FieldMethod, method),
			zap.String("endpoint", endpoint),
			zap.Int("status_code", response.StatusCode()),
			zap.String("body", responseBody),
			zap.Duration("duration", duration),
		}
		switch {
		case response.StatusCode() == http.StatusNotFound:
			// lookups of unknown users, roles and modules end up here
			logger.Debug("LMS returned 404", fields...)
		case response.StatusCode() >= http.StatusInternalServerError:
			logger.Error("LMS error response (server)", fields...)
		default:
			logger.Warn("LMS error response (client)", fields...)
		}
		return nil, &HTTPError{StatusCode: response.StatusCode(), Body: responseBody}
	}

	logger.Debug("HTTP request completed",
		zap.String(utils.FieldMethod, method),
		zap.String("endpoint", endpoint),
		zap.Int("status_code", response.StatusCode()),
		zap.Duration("duration", duration))

	return response, nil
}
