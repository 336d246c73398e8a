package services

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports a missing or unusable input field. Msg overrides
// the default message when the wording matters to the management app.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("%s is required.", e.Field)
}

// NotFoundError reports a record that does not exist in its collection.
type NotFoundError struct {
	Collection string
	ID         uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found.", e.Collection, e.ID)
}

// InvalidReferenceError reports a foreign-key field that does not resolve
// to an existing record.
type InvalidReferenceError struct {
	Field string
	Value uint
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not reference an existing record.", e.Field, e.Value)
}

// InsufficientSeatsError reports a booking that asked for more seats than
// are currently free.
type InsufficientSeatsError struct {
	Available int
	Requested int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("Cannot reserve %d seats. Only %d available.", e.Requested, e.Available)
}

// UnknownItemError reports an order line whose item id resolves to nothing.
type UnknownItemError struct {
	ItemID uint
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("Unknown item %d in order lines.", e.ItemID)
}

// HTTPStatus maps a service error onto the status code the handlers
// respond with: client mistakes are 400, missing records 404, anything
// else 500.
func HTTPStatus(err error) int {
	var (
		validation   *ValidationError
		notFound     *NotFoundError
		invalidRef   *InvalidReferenceError
		insufficient *InsufficientSeatsError
		unknownItem  *UnknownItemError
	)
	switch {
	case errors.As(err, &validation),
		errors.As(err, &invalidRef),
		errors.As(err, &insufficient),
		errors.As(err, &unknownItem):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
