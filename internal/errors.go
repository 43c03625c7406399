package models

import "errors"

// Sentinel errors for the booking flow. The messages are part of the API
// contract; handlers map them to status codes in api.getApiError.
var (
	ErrUserNotFound    = errors.New("User not found")
	ErrFlightNotFound  = errors.New("Flight not found")
	ErrFareNotFound    = errors.New("Fare not found")
	ErrBookingNotFound = errors.New("Booking not found")
	ErrNoFlightsFound  = errors.New("No flights found")
	ErrNoFaresFound    = errors.New("No fares found")
	ErrEmailTaken      = errors.New("Email already registered")
	ErrNotEnoughSeats  = errors.New("Not enough available seats")
)
