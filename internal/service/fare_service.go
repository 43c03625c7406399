package service

import (
	"context"

	"github.com/google/uuid"
	models "github.com/skyfarer/flightbook/internal"
	"github.com/skyfarer/flightbook/internal/ports"
)

type fareService struct {
	repo ports.BookingRepository
}

func NewFareService(repo ports.BookingRepository) *fareService {
	return &fareService{repo: repo}
}

// ListFares treats an empty catalog as an error, not an empty list. Unusual,
// but it is the published contract of the endpoint.
func (s *fareService) ListFares(ctx context.Context) ([]models.Fare, error) {
	fares, err := s.repo.ListFares(ctx)
	if err != nil {
		return nil, err
	}
	if len(fares) == 0 {
		return nil, models.ErrNoFaresFound
	}
	return fares, nil
}

func (s *fareService) GetFare(ctx context.Context, id uuid.UUID) (*models.Fare, error) {
	return s.repo.GetFare(ctx, id)
}
