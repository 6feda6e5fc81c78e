package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsValidateFlightRequiresPassengers(t *testing.T) {
	empty := &Details{}
	err := empty.Validate(TypeFlight)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	withFlight := &Details{Flight: &FlightDetails{}}
	assert.Error(t, withFlight.Validate(TypeFlight))

	valid := &Details{Flight: &FlightDetails{
		Passengers: []Passenger{{FirstName: "Ada", LastName: "Lovelace"}},
	}}
	assert.NoError(t, valid.Validate(TypeFlight))

	// Other types carry no passenger requirement.
	assert.NoError(t, empty.Validate(TypeHotel))
}

func TestDetailsMergeOverwritesVariants(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 5, 11, 0, 0, 0, time.UTC)

	base := Details{Hotel: &HotelDetails{CheckIn: &checkIn, CheckOut: &checkOut, Rooms: 1}}

	newOut := time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC)
	merged := base.Merge(&Details{Hotel: &HotelDetails{CheckIn: &checkIn, CheckOut: &newOut, Rooms: 2}})

	require.NotNil(t, merged.Hotel)
	assert.Equal(t, 2, merged.Hotel.Rooms)
	assert.Equal(t, newOut, *merged.Hotel.CheckOut)

	// Merging nothing changes nothing.
	unchanged := base.Merge(nil)
	assert.Equal(t, base, unchanged)
}

func TestDetailsServiceDate(t *testing.T) {
	out := time.Date(2026, 9, 5, 11, 0, 0, 0, time.UTC)
	hotel := &Details{Hotel: &HotelDetails{CheckOut: &out}}
	require.NotNil(t, hotel.ServiceDate())
	assert.Equal(t, out, *hotel.ServiceDate())

	dep := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 10, 10, 20, 0, 0, 0, time.UTC)
	roundTrip := &Details{Flight: &FlightDetails{DepartureDate: &dep, ReturnDate: &ret}}
	assert.Equal(t, ret, *roundTrip.ServiceDate())

	oneWay := &Details{Flight: &FlightDetails{DepartureDate: &dep}}
	assert.Equal(t, dep, *oneWay.ServiceDate())

	var none *Details
	assert.Nil(t, none.ServiceDate())
	assert.Nil(t, (&Details{}).ServiceDate())
}

func TestDetailsJSONRoundtripThroughScan(t *testing.T) {
	dep := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	original := Details{Flight: &FlightDetails{
		Passengers:    []Passenger{{FirstName: "Ada", LastName: "Lovelace"}},
		Origin:        "SFO",
		Destination:   "NRT",
		DepartureDate: &dep,
	}}

	raw, err := original.Value()
	require.NoError(t, err)

	var decoded Details
	require.NoError(t, decoded.Scan(raw))
	assert.Equal(t, original, decoded)
}
