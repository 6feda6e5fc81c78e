package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Tripbook application
// Pattern: tripbook:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_MEDIUM = 12 * time.Hour // 12 hours - for destination data
	TTL_STATIC_SHORT  = 6 * time.Hour  // 6 hours - for user profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for catalog item details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // 1 hour - for catalog listings
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for search results
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for user bookings
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for unit availability
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "tripbook"
)

// ================== CATALOG MODULE ==================

// Catalog Cache Keys
const (
	CACHE_KEY_DESTINATIONS_LIST = CACHE_PREFIX + ":catalog:destinations:list" // + :page:X:limit:Y
	CACHE_KEY_DESTINATION       = CACHE_PREFIX + ":catalog:destination:uuid:" // + destination-id

	CACHE_KEY_HOTELS_BY_DEST      = CACHE_PREFIX + ":catalog:hotels:destination:"      // + destination-id
	CACHE_KEY_RESTAURANTS_BY_DEST = CACHE_PREFIX + ":catalog:restaurants:destination:" // + destination-id
	CACHE_KEY_ACTIVITIES_BY_DEST  = CACHE_PREFIX + ":catalog:activities:destination:"  // + destination-id

	CACHE_KEY_ITEM_DETAIL = CACHE_PREFIX + ":catalog:item:" // + item-type:item-id
)

// Catalog Cache TTLs
const (
	TTL_DESTINATIONS_LIST = TTL_STATIC_MEDIUM      // 12 hours
	TTL_DESTINATION       = TTL_STATIC_MEDIUM      // 12 hours
	TTL_ITEMS_BY_DEST     = TTL_SEMI_STATIC_SHORT  // 1 hour
	TTL_ITEM_DETAIL       = TTL_SEMI_STATIC_MEDIUM // 2 hours
)

// ================== AVAILABILITY ==================

// Availability Cache Keys
const (
	CACHE_KEY_UNIT_AVAILABILITY = CACHE_PREFIX + ":availability:item:" // + item-type:item-id
)

// Availability Cache TTLs
const (
	TTL_UNIT_AVAILABILITY = TTL_DYNAMIC_SHORT // 5 minutes
)

// ================== AUTH MODULE ==================

// Auth Cache Keys
const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":auth:user:profile:uuid:" // + user-id
)

// Auth Cache TTLs
const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT // 6 hours
)

// ================== BOOKINGS MODULE ==================

// Booking Cache Keys
const (
	CACHE_KEY_GROUP_BOOKINGS = CACHE_PREFIX + ":bookings:group:uuid:"  // + group-id
	CACHE_KEY_BOOKING_DETAIL = CACHE_PREFIX + ":bookings:detail:uuid:" // + booking-id
)

// Booking Cache TTLs
const (
	TTL_GROUP_BOOKINGS = TTL_DYNAMIC_MEDIUM // 10 minutes
	TTL_BOOKING_DETAIL = TTL_DYNAMIC_MEDIUM // 10 minutes
)

// ================== CACHE INVALIDATION PATTERNS ==================

// Patterns for cache invalidation (used with manual invalidation)
const (
	PATTERN_INVALIDATE_CATALOG_ALL  = CACHE_PREFIX + ":catalog:*"
	PATTERN_INVALIDATE_BOOKINGS_ALL = CACHE_PREFIX + ":bookings:*"
	PATTERN_INVALIDATE_USER_ALL     = CACHE_PREFIX + ":*:user:*" // + user-id + *
)

// ================== HELPER FUNCTIONS ==================

// BuildDestinationsListKey constructs the paginated destination listing key
// Example: BuildDestinationsListKey(1, 10) -> "tripbook:catalog:destinations:list:page:1:limit:10"
func BuildDestinationsListKey(page, limit int) string {
	return CACHE_KEY_DESTINATIONS_LIST + ":page:" + fmt.Sprintf("%d", page) + ":limit:" + fmt.Sprintf("%d", limit)
}

func BuildDestinationKey(destinationID string) string {
	return CACHE_KEY_DESTINATION + destinationID
}

func BuildItemDetailKey(itemType, itemID string) string {
	return CACHE_KEY_ITEM_DETAIL + itemType + ":" + itemID
}

func BuildUnitAvailabilityKey(itemType, itemID string) string {
	return CACHE_KEY_UNIT_AVAILABILITY + itemType + ":" + itemID
}

func BuildGroupBookingsKey(groupID string) string {
	return CACHE_KEY_GROUP_BOOKINGS + groupID
}

func BuildBookingDetailKey(bookingID string) string {
	return CACHE_KEY_BOOKING_DETAIL + bookingID
}
