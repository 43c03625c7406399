package service

import (
	"context"

	"github.com/google/uuid"
	models "github.com/skyfarer/flightbook/internal"
	"github.com/skyfarer/flightbook/internal/ports"
)

type bookingService struct {
	repo ports.BookingRepository
}

func NewBookingService(repo ports.BookingRepository) *bookingService {
	return &bookingService{repo: repo}
}

// CreateBooking validates the referenced entities in a fixed order (user,
// flight, seat count, fare) before handing the write to the repository. The
// order decides which error a request with several problems receives, so it
// must not change.
func (s *bookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	if _, err := s.repo.GetUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	flight, err := s.repo.GetFlight(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}

	if req.TotalPassengers() > flight.AvailableSeats {
		return nil, models.ErrNotEnoughSeats
	}

	if _, err := s.repo.GetFare(ctx, req.FareID); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:          uuid.New(),
		UserID:      req.UserID,
		FlightID:    req.FlightID,
		FareID:      req.FareID,
		Adults:      req.Adults,
		Children:    req.Children,
		Infants:     req.Infants,
		BookingDate: req.BookingDate,
	}
	return s.repo.CreateBooking(ctx, booking)
}

func (s *bookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.repo.GetBooking(ctx, id)
}
