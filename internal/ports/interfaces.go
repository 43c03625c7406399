package ports

import (
	"context"

	"github.com/google/uuid"
	models "github.com/skyfarer/flightbook/internal"
)

type BookingRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetFlights(ctx context.Context, search models.FlightSearch) ([]models.Flight, error)
	GetFlight(ctx context.Context, id uuid.UUID) (*models.Flight, error)
	ListFares(ctx context.Context) ([]models.Fare, error)
	GetFare(ctx context.Context, id uuid.UUID) (*models.Fare, error)
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}

type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type FlightService interface {
	SearchFlights(ctx context.Context, search models.FlightSearch) ([]models.Flight, error)
	GetFlight(ctx context.Context, id uuid.UUID) (*models.Flight, error)
}

type FareService interface {
	ListFares(ctx context.Context) ([]models.Fare, error)
	GetFare(ctx context.Context, id uuid.UUID) (*models.Fare, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}
