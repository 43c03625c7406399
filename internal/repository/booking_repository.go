package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	models "github.com/skyfarer/flightbook/internal"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

type DBConn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

type BookingRepository struct {
	db DBConn
}

func NewBookingRepository(db DBConn) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	query := `
        INSERT INTO users (id, name, email, phone)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.Phone)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, models.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (r *BookingRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, phone FROM users WHERE id = $1`, id)
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *BookingRepository) GetFlights(ctx context.Context, search models.FlightSearch) ([]models.Flight, error) {
	query := `
        SELECT id, flight_number, airline, departure_city, arrival_city,
               departure_date, return_date, travel_class, available_seats
        FROM flights
    `
	conditions := []string{"departure_city = $1", "arrival_city = $2", "departure_date = $3"}
	args := []interface{}{search.DepartureCity, search.ArrivalCity, search.DepartureDate.Time}

	if search.TravelClass != "" {
		conditions = append(conditions, fmt.Sprintf("travel_class = $%d", len(args)+1))
		args = append(args, search.TravelClass)
	}
	// search.ReturnDate is deliberately not a filter; the field is accepted
	// on the wire but has never participated in the match.

	query += " WHERE " + strings.Join(conditions, " AND ")

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flights []models.Flight
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *BookingRepository) GetFlight(ctx context.Context, id uuid.UUID) (*models.Flight, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, flight_number, airline, departure_city, arrival_city,
               departure_date, return_date, travel_class, available_seats
        FROM flights WHERE id = $1`, id)
	f, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrFlightNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *BookingRepository) ListFares(ctx context.Context) ([]models.Fare, error) {
	rows, err := r.db.Query(ctx, `SELECT id, fare_type, description FROM fares`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fares []models.Fare
	for rows.Next() {
		var fare models.Fare
		if err := rows.Scan(&fare.ID, &fare.FareType, &fare.Description); err != nil {
			return nil, err
		}
		fares = append(fares, fare)
	}
	return fares, rows.Err()
}

func (r *BookingRepository) GetFare(ctx context.Context, id uuid.UUID) (*models.Fare, error) {
	row := r.db.QueryRow(ctx, `SELECT id, fare_type, description FROM fares WHERE id = $1`, id)
	var fare models.Fare
	if err := row.Scan(&fare.ID, &fare.FareType, &fare.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrFareNotFound
		}
		return nil, err
	}
	return &fare, nil
}

// CreateBooking inserts the booking and decrements the flight's seat count in
// one transaction. The decrement only applies while available_seats still
// covers the party, so two concurrent bookings can never take the count below
// zero; the loser of the race gets ErrNotEnoughSeats and nothing is persisted.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	total := booking.TotalPassengers()
	tag, err := tx.Exec(ctx, `
        UPDATE flights SET available_seats = available_seats - $1
        WHERE id = $2 AND available_seats >= $1
    `, total, booking.FlightID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, models.ErrNotEnoughSeats
	}

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO bookings (id, user_id, flight_id, fare_id, adults, children, infants, booking_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, booking.ID, booking.UserID, booking.FlightID, booking.FareID,
		booking.Adults, booking.Children, booking.Infants, booking.BookingDate.Time)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepository) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, user_id, flight_id, fare_id, adults, children, infants, booking_date
        FROM bookings WHERE id = $1`, id)
	var b models.Booking
	var bookingDate time.Time
	err := row.Scan(&b.ID, &b.UserID, &b.FlightID, &b.FareID,
		&b.Adults, &b.Children, &b.Infants, &bookingDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	b.BookingDate = models.NewDate(bookingDate)
	return &b, nil
}

func scanFlight(row pgx.Row) (*models.Flight, error) {
	var f models.Flight
	var departureDate time.Time
	var returnDate *time.Time
	err := row.Scan(&f.ID, &f.FlightNumber, &f.Airline, &f.DepartureCity, &f.ArrivalCity,
		&departureDate, &returnDate, &f.TravelClass, &f.AvailableSeats)
	if err != nil {
		return nil, err
	}
	f.DepartureDate = models.NewDate(departureDate)
	if returnDate != nil {
		d := models.NewDate(*returnDate)
		f.ReturnDate = &d
	}
	return &f, nil
}
