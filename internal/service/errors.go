package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCourseID    = errors.New("invalid course id")
	ErrTaskAlreadyRunning = errors.New("task is already running")
)

// InvalidParameterError reports a query parameter whose value is not one of the accepted choices.
type InvalidParameterError struct {
	Name  string
	Value string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("Unrecognized %s '%s'", e.Name, e.Value)
}

func invalidParameter(name, value string) error {
	return &InvalidParameterError{Name: name, Value: value}
}
