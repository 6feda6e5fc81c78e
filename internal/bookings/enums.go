package bookings

// BookingType discriminates the catalog category a booking reserves.
type BookingType string

const (
	TypeFlight     BookingType = "flight"
	TypeHotel      BookingType = "hotel"
	TypeRestaurant BookingType = "restaurant"
	TypeCarRental  BookingType = "car_rental"
	TypePackage    BookingType = "package"
)

func (t BookingType) IsValid() bool {
	switch t {
	case TypeFlight, TypeHotel, TypeRestaurant, TypeCarRental, TypePackage:
		return true
	default:
		return false
	}
}

func (t BookingType) String() string {
	return string(t)
}

// AllBookingTypes returns every supported booking type.
func AllBookingTypes() []BookingType {
	return []BookingType{TypeFlight, TypeHotel, TypeRestaurant, TypeCarRental, TypePackage}
}
