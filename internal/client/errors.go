package client

import (
	"errors"
	"net/http"
)

var (
	ErrCourseNotFound = errors.New("course does not exist")
	ErrAccessDenied   = errors.New("access denied")
	ErrUserNotFound   = errors.New("user does not exist")
	ErrRoleNotFound   = errors.New("role does not exist")
	ErrModuleNotFound = errors.New("module does not exist")
)

// hasStatus reports whether err is an *HTTPError with the given status code.
func hasStatus(err error, status int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == status
}

func isNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}
