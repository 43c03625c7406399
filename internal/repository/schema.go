package repository

import (
	"context"

	"github.com/google/uuid"
	models "github.com/skyfarer/flightbook/internal"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id UUID PRIMARY KEY,
        name TEXT NOT NULL,
        email TEXT NOT NULL UNIQUE,
        phone TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS flights (
        id UUID PRIMARY KEY,
        flight_number TEXT NOT NULL,
        airline TEXT NOT NULL,
        departure_city TEXT NOT NULL,
        arrival_city TEXT NOT NULL,
        departure_date DATE NOT NULL,
        return_date DATE,
        travel_class TEXT NOT NULL,
        available_seats INT NOT NULL CHECK (available_seats >= 0)
    )`,
	`CREATE TABLE IF NOT EXISTS fares (
        id UUID PRIMARY KEY,
        fare_type TEXT NOT NULL,
        description TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS bookings (
        id UUID PRIMARY KEY,
        user_id UUID NOT NULL REFERENCES users (id),
        flight_id UUID NOT NULL REFERENCES flights (id),
        fare_id UUID NOT NULL REFERENCES fares (id),
        adults INT NOT NULL CHECK (adults >= 0),
        children INT NOT NULL CHECK (children >= 0),
        infants INT NOT NULL CHECK (infants >= 0),
        booking_date DATE NOT NULL
    )`,
}

// EnsureSchema creates the tables when they do not exist yet.
func (r *BookingRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoData inserts the demonstration fares and flights. The seed is
// idempotent: each table is only populated while it is empty, so restarting
// the process never duplicates rows.
func (r *BookingRepository) SeedDemoData(ctx context.Context) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM fares`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		fares := []models.Fare{
			{FareType: "Standard", Description: "Regular fare"},
			{FareType: "Special", Description: "Discounted fare"},
		}
		for _, fare := range fares {
			_, err := r.db.Exec(ctx,
				`INSERT INTO fares (id, fare_type, description) VALUES ($1, $2, $3)`,
				uuid.New(), fare.FareType, fare.Description)
			if err != nil {
				return err
			}
		}
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flights`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		today := models.Today()
		flights := []models.Flight{
			{
				FlightNumber:   "FL001",
				Airline:        "Sky Airlines",
				DepartureCity:  "New York",
				ArrivalCity:    "Los Angeles",
				DepartureDate:  today,
				TravelClass:    "Economy",
				AvailableSeats: 50,
			},
			{
				FlightNumber:   "FL002",
				Airline:        "Global Airways",
				DepartureCity:  "Chicago",
				ArrivalCity:    "Miami",
				DepartureDate:  today,
				TravelClass:    "Business",
				AvailableSeats: 20,
			},
		}
		for _, f := range flights {
			_, err := r.db.Exec(ctx, `
                INSERT INTO flights (id, flight_number, airline, departure_city, arrival_city,
                                     departure_date, travel_class, available_seats)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            `, uuid.New(), f.FlightNumber, f.Airline, f.DepartureCity, f.ArrivalCity,
				f.DepartureDate.Time, f.TravelClass, f.AvailableSeats)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
