package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrMonitorNotFound  = errors.New("monitor not found")
	ErrRequestNotFound  = errors.New("request not found")
	ErrSchemaOutdated   = errors.New("database schema is outdated, run migrations")
	ErrInvalidTimeRange = errors.New("end date must be after start date")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, typeReason string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       typeReason,
		Reason:     reason,
	}
}
