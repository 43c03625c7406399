package service

import (
	"context"

	"github.com/google/uuid"
	models "github.com/skyfarer/flightbook/internal"
	"github.com/skyfarer/flightbook/internal/ports"
)

type flightService struct {
	repo ports.BookingRepository
}

func NewFlightService(repo ports.BookingRepository) *flightService {
	return &flightService{repo: repo}
}

// SearchFlights reports an empty result set as ErrNoFlightsFound rather than
// returning an empty list; callers depend on the 404.
func (s *flightService) SearchFlights(ctx context.Context, search models.FlightSearch) ([]models.Flight, error) {
	flights, err := s.repo.GetFlights(ctx, search)
	if err != nil {
		return nil, err
	}
	if len(flights) == 0 {
		return nil, models.ErrNoFlightsFound
	}
	return flights, nil
}

func (s *flightService) GetFlight(ctx context.Context, id uuid.UUID) (*models.Flight, error) {
	return s.repo.GetFlight(ctx, id)
}
