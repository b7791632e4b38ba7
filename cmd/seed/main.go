package main

import (
	"log"
	"os"
	"time"

	"agrimarket/internal/database"
	"agrimarket/internal/domain"
	"agrimarket/internal/modules/notification"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "agrimarket.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	// AutoMigrate to ensure schema is up to date
	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Equipment{},
		&domain.Booking{},
		&domain.LaborProfile{},
		&domain.Product{},
		&domain.Order{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := notification.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM labor_profiles")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		return string(h)
	}

	farmer := domain.User{
		Email:        "farmer@agrimarket.in",
		PasswordHash: hash("farmer123"),
		Name:         "Ravi Kumar",
		Phone:        "+91 98765 43210",
		Role:         domain.RoleFarmer,
	}
	seller := domain.User{
		Email:        "seller@agrimarket.in",
		PasswordHash: hash("seller123"),
		Name:         "Anita Devi",
		Phone:        "+91 91234 56789",
		Role:         domain.RoleSeller,
	}
	laborer := domain.User{
		Email:        "laborer@agrimarket.in",
		PasswordHash: hash("laborer123"),
		Name:         "Suresh Yadav",
		Phone:        "+91 99887 76655",
		Role:         domain.RoleLaborer,
	}

	for _, u := range []*domain.User{&farmer, &seller, &laborer} {
		if err := db.Create(u).Error; err != nil {
			log.Fatal("user seed failed:", err)
		}
	}

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")

	tractor := domain.Equipment{
		SellerID:     seller.ID,
		Name:         "Mahindra 575 Tractor",
		Description:  "45 HP tractor with rotavator attachment",
		PricePerHour: 500,
		IsAvailable:  true,
	}
	harvester := domain.Equipment{
		SellerID:     seller.ID,
		Name:         "Combine Harvester",
		Description:  "Self-propelled, suitable for wheat and paddy",
		PricePerHour: 1800,
		IsAvailable:  true,
	}
	sprayer := domain.Equipment{
		SellerID:     seller.ID,
		Name:         "Boom Sprayer",
		PricePerHour: 250,
		IsAvailable:  false,
	}

	for _, e := range []*domain.Equipment{&tractor, &harvester, &sprayer} {
		if err := db.Create(e).Error; err != nil {
			log.Fatal("equipment seed failed:", err)
		}
	}

	// ================== PRODUCTS ==================
	log.Println("Creating products...")

	products := []domain.Product{
		{Name: "Wheat Seeds (10kg)", Category: domain.CategorySeeds, Price: 850, StockQuantity: 40},
		{Name: "Urea Fertilizer (45kg)", Category: domain.CategoryFertilizer, Price: 310, StockQuantity: 120},
		{Name: "Hand Tiller", Category: domain.CategoryTools, Price: 1450, StockQuantity: 15},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatal("product seed failed:", err)
		}
	}

	// ================== LABOR PROFILE ==================
	log.Println("Creating labor profile...")

	profile := domain.LaborProfile{
		UserID:          laborer.ID,
		Skills:          []string{"harvesting", "irrigation", "tractor operation"},
		DailyWage:       700,
		ExperienceYears: 6,
		IsAvailable:     true,
		IsVerified:      true,
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Fatal("labor profile seed failed:", err)
	}

	// ================== BOOKING ==================
	log.Println("Creating a pending booking...")

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	b := domain.Booking{
		EquipmentID: tractor.ID,
		FarmerID:    farmer.ID,
		StartDate:   start,
		EndDate:     start.Add(150 * time.Minute),
		TotalCost:   3 * tractor.PricePerHour, // ceil(2.5h) = 3h
		Status:      domain.BookingPending,
	}
	if err := db.Create(&b).Error; err != nil {
		log.Fatal("booking seed failed:", err)
	}

	log.Println("Seed complete.")
}
