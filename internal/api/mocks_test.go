package api_test

import (
	"context"

	"github.com/google/uuid"
	models "github.com/skyfarer/flightbook/internal"
	"github.com/stretchr/testify/mock"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockFlightService struct {
	mock.Mock
}

func (m *mockFlightService) SearchFlights(ctx context.Context, search models.FlightSearch) ([]models.Flight, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *mockFlightService) GetFlight(ctx context.Context, id uuid.UUID) (*models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

type mockFareService struct {
	mock.Mock
}

func (m *mockFareService) ListFares(ctx context.Context) ([]models.Fare, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Fare), args.Error(1)
}

func (m *mockFareService) GetFare(ctx context.Context, id uuid.UUID) (*models.Fare, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Fare), args.Error(1)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
