package services

import (
	"errors"

	"restaurant-pos-api/models"
)

// ErrNotFound signals that no record exists for the given id.
var ErrNotFound = errors.New("record not found")

// ValidationError marks rejected input. The message is safe to show clients.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// TransitionError reports a status change the order lifecycle does not allow.
type TransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
	Err  error
}

func (e *TransitionError) Error() string { return e.Err.Error() }

func (e *TransitionError) Unwrap() error { return e.Err }
