package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tourcrm/internal/config"
	"tourcrm/internal/database"
	"tourcrm/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	log.Println("seeding database")

	if err := seedUsers(db); err != nil {
		log.Fatal(err)
	}
	categories, err := seedCategories(db)
	if err != nil {
		log.Fatal(err)
	}
	tours, err := seedTours(db, categories)
	if err != nil {
		log.Fatal(err)
	}
	if err := seedTourDates(db, tours); err != nil {
		log.Fatal(err)
	}

	log.Println("seed complete")
}

func seedUsers(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []domain.User{
		{Name: "Admin User", Email: "admin@demo.com", PasswordHash: string(hash), Role: domain.RoleAdmin},
		{Name: "Manager User", Email: "manager@demo.com", PasswordHash: string(hash), Role: domain.RoleManager},
	}
	for i := range users {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&users[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(db *gorm.DB) ([]domain.Category, error) {
	categories := []domain.Category{
		{Title: "Adventure", Slug: "adventure", Icon: "🏔️", Color: "#FF6B6B"},
		{Title: "Cultural", Slug: "cultural", Icon: "🏛️", Color: "#4ECDC4"},
		{Title: "Nature", Slug: "nature", Icon: "🌲", Color: "#95E1D3"},
		{Title: "Beach & Island", Slug: "beach", Icon: "🏖️", Color: "#38BDF8"},
		{Title: "Wildlife", Slug: "wildlife", Icon: "🦁", Color: "#F59E0B"},
	}
	for i := range categories {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&categories[i]).Error
		if err != nil {
			return nil, err
		}
		// OnConflict DoNothing leaves the ID unset for existing rows.
		if categories[i].ID == 0 {
			if err := db.Where("slug = ?", categories[i].Slug).First(&categories[i]).Error; err != nil {
				return nil, err
			}
		}
	}
	return categories, nil
}

func seedTours(db *gorm.DB, categories []domain.Category) ([]domain.Tour, error) {
	tours := []domain.Tour{
		{
			Title: "Mountain Trek Adventure", Slug: "mountain-trek",
			Type: "Group", Duration: 5, Difficulty: "Hard", BasePrice: 1200,
			Status:       domain.TourPublished,
			Description:  "An exciting 5-day mountain trekking adventure through stunning peaks",
			Inclusions:   domain.StringList{"Professional Guide", "All Meals", "Accommodation", "Equipment"},
			Exclusions:   domain.StringList{"Flight Tickets", "Travel Insurance", "Personal Expenses"},
			MeetingPoint: "Mountain Base Camp",
			CategoryID:   categories[0].ID,
		},
		{
			Title: "Cultural Heritage Tour", Slug: "cultural-heritage",
			Type: "Group", Duration: 3, Difficulty: "Easy", BasePrice: 450,
			Status:       domain.TourPublished,
			Description:  "Explore ancient temples and historical sites",
			Inclusions:   domain.StringList{"Expert Guide", "Entrance Fees", "Lunch"},
			Exclusions:   domain.StringList{"Hotel", "Dinner", "Transportation"},
			MeetingPoint: "City Center Museum",
			CategoryID:   categories[1].ID,
		},
		{
			Title: "Rainforest Expedition", Slug: "rainforest-expedition",
			Type: "Private", Duration: 7, Difficulty: "Medium", BasePrice: 2100,
			Status:       domain.TourPublished,
			Description:  "Discover the wonders of the tropical rainforest",
			Inclusions:   domain.StringList{"Expert Naturalist", "All Meals", "Camping Equipment", "Permits"},
			Exclusions:   domain.StringList{"Flights", "Insurance"},
			MeetingPoint: "Rainforest Visitor Center",
			CategoryID:   categories[2].ID,
		},
		{
			Title: "Island Hopping Paradise", Slug: "island-hopping",
			Type: "Group", Duration: 4, Difficulty: "Easy", BasePrice: 890,
			Status:       domain.TourPublished,
			Description:  "Visit pristine beaches and crystal-clear waters",
			Inclusions:   domain.StringList{"Boat Transport", "Snorkeling Gear", "Lunch", "Guide"},
			Exclusions:   domain.StringList{"Hotel", "Breakfast", "Dinner"},
			MeetingPoint: "Harbor Dock 5",
			CategoryID:   categories[3].ID,
		},
		{
			Title: "Safari Adventure", Slug: "safari-adventure",
			Type: "Group", Duration: 6, Difficulty: "Medium", BasePrice: 1850,
			Status:       domain.TourPublished,
			Description:  "Experience wildlife in their natural habitat",
			Inclusions:   domain.StringList{"4x4 Safari Vehicle", "Professional Guide", "All Meals", "Lodge Accommodation"},
			Exclusions:   domain.StringList{"Flights", "Tips", "Souvenirs"},
			MeetingPoint: "Safari Lodge Reception",
			CategoryID:   categories[4].ID,
		},
		{
			Title: "City Food & Culture Tour", Slug: "city-food-tour",
			Type: "Group", Duration: 1, Difficulty: "Easy", BasePrice: 120,
			Status:       domain.TourDraft,
			Description:  "Taste authentic local cuisine and explore vibrant markets",
			Inclusions:   domain.StringList{"Food Samples", "Local Guide", "Market Visit"},
			Exclusions:   domain.StringList{"Additional Purchases", "Transportation"},
			MeetingPoint: "Central Market Square",
			CategoryID:   categories[1].ID,
		},
	}
	for i := range tours {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&tours[i]).Error
		if err != nil {
			return nil, err
		}
		if tours[i].ID == 0 {
			if err := db.Where("slug = ?", tours[i].Slug).First(&tours[i]).Error; err != nil {
				return nil, err
			}
		}
	}
	return tours, nil
}

func seedTourDates(db *gorm.DB, tours []domain.Tour) error {
	var existing int64
	if err := db.Model(&domain.TourDate{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	now := time.Now()
	for i := range tours {
		for j := 1; j <= 3; j++ {
			d := domain.TourDate{
				TourID:       tours[i].ID,
				Date:         now.AddDate(0, 0, i*10+j*7),
				MaxGroupSize: 10 + i*2,
			}
			if j == 2 {
				override := tours[i].BasePrice + 100
				d.PriceOverride = &override
			}
			if err := db.Create(&d).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
