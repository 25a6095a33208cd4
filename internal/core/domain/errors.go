package domain

import "errors"

var (
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrExceedsAvailable   = errors.New("amount exceeds remaining units")
	ErrNoUnitsLeft        = errors.New("no units left to consume")
	ErrUnauthorized       = errors.New("operator not authorized for this amenity")
	ErrMalformedBadge     = errors.New("malformed badge payload")
	ErrWrongEvent         = errors.New("badge belongs to a different event")
	ErrEventMismatch      = errors.New("amenity and attendee belong to different events")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrQuotaExceeded      = errors.New("notification quota exceeded")
	ErrAttendeeNotFound   = errors.New("attendee not found")
	ErrAmenityNotFound    = errors.New("amenity not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrOperatorNotFound   = errors.New("operator not found")
)
