package bookings

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Passenger identifies one traveler on a flight booking.
type Passenger struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type FlightDetails struct {
	Passengers    []Passenger `json:"passengers"`
	Origin        string      `json:"origin,omitempty"`
	Destination   string      `json:"destination,omitempty"`
	DepartureDate *time.Time  `json:"departure_date,omitempty"`
	ReturnDate    *time.Time  `json:"return_date,omitempty"`
	CabinClass    string      `json:"cabin_class,omitempty"`
}

type HotelDetails struct {
	CheckIn  *time.Time `json:"check_in,omitempty"`
	CheckOut *time.Time `json:"check_out,omitempty"`
	Rooms    int        `json:"rooms,omitempty"`
	Guests   int        `json:"guests,omitempty"`
	RoomType string     `json:"room_type,omitempty"`
}

type RestaurantDetails struct {
	ReservationTime   *time.Time `json:"reservation_time,omitempty"`
	PartySize         int        `json:"party_size,omitempty"`
	SeatingPreference string     `json:"seating_preference,omitempty"`
}

type CarRentalDetails struct {
	PickupDate     *time.Time `json:"pickup_date,omitempty"`
	DropoffDate    *time.Time `json:"dropoff_date,omitempty"`
	PickupLocation string     `json:"pickup_location,omitempty"`
	VehicleClass   string     `json:"vehicle_class,omitempty"`
}

type PackageDetails struct {
	PackageName string     `json:"package_name,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Travelers   int        `json:"travelers,omitempty"`
}

// Details is a tagged union over the per-type payloads. Exactly the
// variant matching the booking type is expected to be set; the others
// stay nil.
type Details struct {
	Flight     *FlightDetails     `json:"flight,omitempty"`
	Hotel      *HotelDetails      `json:"hotel,omitempty"`
	Restaurant *RestaurantDetails `json:"restaurant,omitempty"`
	CarRental  *CarRentalDetails  `json:"car_rental,omitempty"`
	Package    *PackageDetails    `json:"package,omitempty"`
}

// Validate checks the type-specific preconditions for creation.
func (d *Details) Validate(bookingType BookingType) error {
	if bookingType == TypeFlight {
		if d == nil || d.Flight == nil || len(d.Flight.Passengers) == 0 {
			return NewValidationError("flight bookings require a non-empty passenger list")
		}
	}
	return nil
}

// Merge overlays the non-nil variants of mods onto d and returns the
// result. Colliding variants are overwritten wholesale.
func (d Details) Merge(mods *Details) Details {
	if mods == nil {
		return d
	}
	if mods.Flight != nil {
		d.Flight = mods.Flight
	}
	if mods.Hotel != nil {
		d.Hotel = mods.Hotel
	}
	if mods.Restaurant != nil {
		d.Restaurant = mods.Restaurant
	}
	if mods.CarRental != nil {
		d.CarRental = mods.CarRental
	}
	if mods.Package != nil {
		d.Package = mods.Package
	}
	return d
}

// IsEmpty reports whether no variant is set.
func (d *Details) IsEmpty() bool {
	return d == nil || (d.Flight == nil && d.Hotel == nil && d.Restaurant == nil && d.CarRental == nil && d.Package == nil)
}

// ServiceDate derives the day the trip element ends, used by the
// completion sweep. Returns nil when the payload carries no dates.
func (d *Details) ServiceDate() *time.Time {
	if d == nil {
		return nil
	}
	switch {
	case d.Flight != nil:
		if d.Flight.ReturnDate != nil {
			return d.Flight.ReturnDate
		}
		return d.Flight.DepartureDate
	case d.Hotel != nil:
		return d.Hotel.CheckOut
	case d.Restaurant != nil:
		return d.Restaurant.ReservationTime
	case d.CarRental != nil:
		return d.CarRental.DropoffDate
	case d.Package != nil:
		return d.Package.EndDate
	}
	return nil
}

// Value implements driver.Valuer so Details persists as JSONB.
func (d Details) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner.
func (d *Details) Scan(value interface{}) error {
	if value == nil {
		*d = Details{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported details column type %T", value)
	}
}

// StringList persists a list of free-text strings as JSONB.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported list column type %T", value)
	}
}
