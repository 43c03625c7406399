package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for all calendar dates. Flight and booking
// dates carry no time component.
const DateLayout = "2006-01-02"

// Date is a calendar date in UTC. It marshals as "2006-01-02" in both JSON
// and text form.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	return NewDate(time.Now().UTC())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(DateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText/UnmarshalText keep the XML render path on the same format.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Format(DateLayout)), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type User struct {
	ID    uuid.UUID `json:"user_id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type Flight struct {
	ID             uuid.UUID `json:"flight_id"`
	FlightNumber   string    `json:"flight_number"`
	Airline        string    `json:"airline"`
	DepartureCity  string    `json:"departure_city"`
	ArrivalCity    string    `json:"arrival_city"`
	DepartureDate  Date      `json:"departure_date"`
	ReturnDate     *Date     `json:"return_date,omitempty"`
	TravelClass    string    `json:"travel_class"`
	AvailableSeats int       `json:"available_seats"`
}

type Fare struct {
	ID          uuid.UUID `json:"fare_id"`
	FareType    string    `json:"fare_type"`
	Description string    `json:"description"`
}

type Booking struct {
	ID          uuid.UUID `json:"booking_id"`
	UserID      uuid.UUID `json:"user_id"`
	FlightID    uuid.UUID `json:"flight_id"`
	FareID      uuid.UUID `json:"fare_id"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	Infants     int       `json:"infants"`
	BookingDate Date      `json:"booking_date"`
}

func (b *Booking) TotalPassengers() int {
	return b.Adults + b.Children + b.Infants
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=3,max=32"`
}

type CreateBookingRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	FlightID    uuid.UUID `json:"flight_id" validate:"required"`
	FareID      uuid.UUID `json:"fare_id" validate:"required"`
	Adults      int       `json:"adults" validate:"gte=0"`
	Children    int       `json:"children" validate:"gte=0"`
	Infants     int       `json:"infants" validate:"gte=0"`
	BookingDate Date      `json:"booking_date" validate:"required"`
}

func (r *CreateBookingRequest) TotalPassengers() int {
	return r.Adults + r.Children + r.Infants
}

// FlightSearch holds the /flights query filters. ReturnDate is accepted on
// the wire but is not part of the match; see the repository query builder.
type FlightSearch struct {
	DepartureCity string
	ArrivalCity   string
	DepartureDate Date
	ReturnDate    *Date
	TravelClass   string
}
