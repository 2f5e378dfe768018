package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/Davedaz23/Phoenix-Tour-sub000/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema, creates a super admin account and seeds a
// starter catalog.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("PHOENIX TOURS - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to database")

	// Migrate schema
	if err := config.Gorm.AutoMigrate(
		&models.Admin{},
		&models.AdminSession{},
		&models.ActivityLog{},
		&models.Traveler{},
		&models.Tour{},
		&models.Booking{},
		&models.Post{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	// Get input from user
	email, password, name := getAdminCredentials()

	// Check if admin already exists
	var existingAdmin models.Admin
	if err := config.Gorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	// Hash password
	authService := services.GetAdminAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	// Create super admin
	superAdmin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "super_admin",
		Status:       "active",
	}

	if err := config.Gorm.Create(&superAdmin).Error; err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	seedTours()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Super Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", superAdmin.ID)
	fmt.Printf("Email: %s\n", superAdmin.Email)
	fmt.Printf("Name:  %s\n", superAdmin.Name)
	fmt.Printf("Role:  %s\n", superAdmin.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/cms/login with email and password")
	fmt.Println("3. Use the returned token for authenticated requests")
	fmt.Println()
}

// seedTours inserts the starter catalog when the tours table is empty.
func seedTours() {
	var count int64
	if err := config.Gorm.Model(&models.Tour{}).Count(&count).Error; err != nil {
		log.Printf("⚠️ Could not count tours, skipping catalog seed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✓ Tours table already has %d rows, skipping catalog seed", count)
		return
	}

	tours := []models.Tour{
		{
			Title:            "Simien Mountains Trek",
			ShortDescription: "Four days among the gelada baboons and walia ibex of the Simien massif.",
			Description:      "A classic trek through the Simien Mountains National Park: Sankaber, Geech and Chenek camps, the Jinbar waterfall and the Imet Gogo viewpoint at 3,926m.",
			Category:         "Trekking & Hiking",
			Region:           "Simien Mountains",
			Difficulty:       "Challenging",
			Duration:         "4 days",
			Price:            299,
			MaxParticipants:  12,
			AvailableDates:   models.DatesList{"2026-10-05", "2026-10-19", "2026-11-02"},
			Tags:             models.TagsList{"trekking", "wildlife", "mountains"},
			Itinerary: models.ItineraryList{
				{Day: 1, Title: "Debark to Sankaber", Description: "Park registration, scout pickup and the first ridge walk."},
				{Day: 2, Title: "Sankaber to Geech", Description: "Cross the Jinbar river above the waterfall and climb to Geech camp."},
				{Day: 3, Title: "Imet Gogo", Description: "Day walk to the Imet Gogo and Saha viewpoints."},
				{Day: 4, Title: "Geech to Chenek and out", Description: "Descend past Chenek to meet the vehicle back to Debark."},
			},
			Status: "Active",
		},
		{
			Title:            "Lalibela Rock Churches",
			ShortDescription: "Two days at the eleven medieval churches carved into living rock.",
			Description:      "Guided visits through both clusters of the Lalibela churches plus Bete Giyorgis, with an early service at dawn on day two.",
			Category:         "Historic Route",
			Region:           "Lalibela",
			Difficulty:       "Easy",
			Duration:         "2 days",
			Price:            180,
			MaxParticipants:  20,
			AvailableDates:   models.DatesList{"2026-09-20", "2026-10-11"},
			Tags:             models.TagsList{"history", "unesco", "churches"},
			Itinerary: models.ItineraryList{
				{Day: 1, Title: "Northern cluster", Description: "Bete Medhane Alem, Bete Maryam and the connecting trenches."},
				{Day: 2, Title: "Southern cluster and Bete Giyorgis", Description: "Dawn service, southern cluster and the cross-shaped Bete Giyorgis."},
			},
			Status: "Active",
		},
		{
			Title:            "Danakil Depression Expedition",
			ShortDescription: "Salt flats, lava lakes and the sulphur springs of Dallol.",
			Description:      "An escorted expedition to Erta Ale's lava lake and the Dallol hydrothermal field, one of the hottest places on earth.",
			Category:         "Adventure",
			Region:           "Danakil Depression",
			Difficulty:       "Challenging",
			Duration:         "3 days",
			Price:            450,
			MaxParticipants:  8,
			AvailableDates:   models.DatesList{"2026-11-15", "2026-12-06"},
			Tags:             models.TagsList{"volcano", "desert", "expedition"},
			Itinerary: models.ItineraryList{
				{Day: 1, Title: "To Erta Ale", Description: "Drive via Abala and night climb to the crater rim."},
				{Day: 2, Title: "Lake Afrera", Description: "Sunrise at the lava lake, then the salt lake at Afrera."},
				{Day: 3, Title: "Dallol", Description: "Sulphur springs, salt canyons and the caravan route back."},
			},
			Status: "Active",
		},
	}

	for i := range tours {
		if err := config.Gorm.Create(&tours[i]).Error; err != nil {
			log.Printf("⚠️ Failed to seed tour %q: %v", tours[i].Title, err)
			continue
		}
		log.Printf("✓ Seeded tour: %s", tours[i].Title)
	}
}

// getAdminCredentials prompts user for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Super Admin Details:")
	fmt.Println()

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	// Name
	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	// Password
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)

		authService := services.GetAdminAuthService()
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	// Confirm password
	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name
}
