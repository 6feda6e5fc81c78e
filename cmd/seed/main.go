package main

import (
	"fmt"
	"log"

	"tripbook/internal/catalog"
	"tripbook/internal/shared/config"
	"tripbook/internal/shared/database"
	"tripbook/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Tripbook Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed. Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"payments",
		"bookings",
		"hotels",
		"restaurants",
		"activities",
		"destinations",
		"users",
	}

	for _, table := range tables {
		if err := s.db.PostgreSQL.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clean table %s: %w", table, err)
		}
	}

	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	destinations, err := s.seedDestinations()
	if err != nil {
		return fmt.Errorf("failed to seed destinations: %w", err)
	}

	if err := s.seedCatalogItems(destinations); err != nil {
		return fmt.Errorf("failed to seed catalog items: %w", err)
	}

	return nil
}

func (s *Seeder) seedUsers() error {
	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	seedUsers := []users.User{
		{
			ID:        uuid.New(),
			Email:     "admin@tripbook.dev",
			Password:  string(password),
			FirstName: "Admin",
			LastName:  "User",
			Role:      users.RoleAdmin,
		},
		{
			ID:        uuid.New(),
			Email:     "traveler@tripbook.dev",
			Password:  string(password),
			FirstName: "Ada",
			LastName:  "Lovelace",
			Role:      users.RoleUser,
		},
	}

	for _, user := range seedUsers {
		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return err
		}
		fmt.Printf("  user: %s (%s)\n", user.Email, user.Role)
	}

	return nil
}

func (s *Seeder) seedDestinations() (map[string]uuid.UUID, error) {
	seedDestinations := []catalog.Destination{
		{
			ID:          uuid.New(),
			Name:        "Paris",
			Country:     "France",
			Description: "Museums, cafes and riverside walks.",
		},
		{
			ID:          uuid.New(),
			Name:        "Tokyo",
			Country:     "Japan",
			Description: "Neon districts, temples and exceptional food.",
		},
		{
			ID:          uuid.New(),
			Name:        "Barcelona",
			Country:     "Spain",
			Description: "Gaudi architecture, beaches and late dinners.",
		},
	}

	byName := make(map[string]uuid.UUID, len(seedDestinations))
	for _, destination := range seedDestinations {
		if err := s.db.PostgreSQL.Create(&destination).Error; err != nil {
			return nil, err
		}
		byName[destination.Name] = destination.ID
		fmt.Printf("  destination: %s, %s\n", destination.Name, destination.Country)
	}

	return byName, nil
}

func (s *Seeder) seedCatalogItems(destinations map[string]uuid.UUID) error {
	hotels := []catalog.Hotel{
		{ID: uuid.New(), DestinationID: destinations["Paris"], Name: "Hotel Lumiere", StarRating: 4, NightlyRate: 180, AvailableUnits: 20, Address: "12 Rue de Rivoli"},
		{ID: uuid.New(), DestinationID: destinations["Paris"], Name: "Le Marais Boutique", StarRating: 3, NightlyRate: 120, AvailableUnits: 8},
		{ID: uuid.New(), DestinationID: destinations["Tokyo"], Name: "Shinjuku Grand", StarRating: 5, NightlyRate: 260, AvailableUnits: 45},
		{ID: uuid.New(), DestinationID: destinations["Barcelona"], Name: "Casa del Mar", StarRating: 4, NightlyRate: 150, AvailableUnits: 15},
	}
	for _, hotel := range hotels {
		if err := s.db.PostgreSQL.Create(&hotel).Error; err != nil {
			return err
		}
	}
	fmt.Printf("  hotels: %d\n", len(hotels))

	restaurants := []catalog.Restaurant{
		{ID: uuid.New(), DestinationID: destinations["Paris"], Name: "Bistro Courier", Cuisine: "French", PriceRange: "$$$", AveragePrice: 85, AvailableUnits: 12},
		{ID: uuid.New(), DestinationID: destinations["Tokyo"], Name: "Sukiyabashi Corner", Cuisine: "Sushi", PriceRange: "$$$", AveragePrice: 140, AvailableUnits: 6},
		{ID: uuid.New(), DestinationID: destinations["Barcelona"], Name: "Tapas del Born", Cuisine: "Spanish", PriceRange: "$$", AveragePrice: 40, AvailableUnits: 18},
	}
	for _, restaurant := range restaurants {
		if err := s.db.PostgreSQL.Create(&restaurant).Error; err != nil {
			return err
		}
	}
	fmt.Printf("  restaurants: %d\n", len(restaurants))

	activities := []catalog.Activity{
		{ID: uuid.New(), DestinationID: destinations["Paris"], Name: "Louvre Guided Tour", Category: "culture", Price: 65, DurationHours: 3, AvailableUnits: 30},
		{ID: uuid.New(), DestinationID: destinations["Tokyo"], Name: "Tsukiji Food Walk", Category: "food", Price: 90, DurationHours: 4, AvailableUnits: 12},
		{ID: uuid.New(), DestinationID: destinations["Barcelona"], Name: "Sagrada Familia Tickets", Category: "culture", Price: 35, DurationHours: 2, AvailableUnits: 50},
	}
	for _, activity := range activities {
		if err := s.db.PostgreSQL.Create(&activity).Error; err != nil {
			return err
		}
	}
	fmt.Printf("  activities: %d\n", len(activities))

	return nil
}
