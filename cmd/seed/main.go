package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"renthub/internal/config"
	"renthub/internal/db"
	"renthub/internal/model"
	"renthub/internal/repository"
)

const seedPassword = "Password123"

type seedCar struct {
	brand        string
	carModel     string
	year         int
	category     string
	seats        int
	fuelType     string
	transmission string
	pricePerDay  string
	location     string
	description  string
}

var seedCars = []seedCar{
	{"BMW", "X5", 2022, "SUV", 5, "Diesel", "Automatic", "130.00", "New York", "Spacious SUV with panoramic roof."},
	{"Toyota", "Corolla", 2021, "Sedan", 5, "Petrol", "Manual", "45.00", "Chicago", "Reliable daily driver."},
	{"Tesla", "Model 3", 2023, "Sedan", 5, "Electric", "Automatic", "95.00", "New York", "Long range, autopilot."},
	{"Jeep", "Wrangler", 2020, "SUV", 4, "Petrol", "Manual", "80.00", "Houston", "Open-top off-roader."},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Car{}, &model.Booking{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	cars := repository.NewCarRepository(gormDB)

	owner, err := ensureUser(ctx, users, "Demo Owner", "owner@renthub.local", model.RoleOwner)
	if err != nil {
		log.Fatalf("Failed to seed owner: %v", err)
	}
	if _, err := ensureUser(ctx, users, "Demo Renter", "renter@renthub.local", model.RoleUser); err != nil {
		log.Fatalf("Failed to seed renter: %v", err)
	}

	existing, err := cars.FindByOwner(ctx, owner.ID)
	if err != nil {
		log.Fatalf("Failed to list owner cars: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Owner already has %d cars, skipping car seed", len(existing))
		return
	}

	for _, sc := range seedCars {
		price, err := decimal.NewFromString(sc.pricePerDay)
		if err != nil {
			log.Printf("Skipping car %s %s with invalid price: %s", sc.brand, sc.carModel, sc.pricePerDay)
			continue
		}
		car := &model.Car{
			OwnerID:         owner.ID,
			Brand:           sc.brand,
			Model:           sc.carModel,
			Year:            sc.year,
			Category:        sc.category,
			SeatingCapacity: sc.seats,
			FuelType:        sc.fuelType,
			Transmission:    sc.transmission,
			PricePerDay:     price,
			Location:        sc.location,
			Description:     sc.description,
			IsAvailable:     true,
		}
		if err := cars.Create(ctx, car); err != nil {
			log.Fatalf("Failed to seed car %s %s: %v", sc.brand, sc.carModel, err)
		}
	}

	log.Printf("Seeded %d cars for %s (password %q)", len(seedCars), owner.Email, seedPassword)
}

func ensureUser(ctx context.Context, users repository.UserRepository, name, email, role string) (*model.User, error) {
	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
