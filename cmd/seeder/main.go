// cmd/seeder/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/unclebandit/campaigndash-backend/internal/db"
	"github.com/unclebandit/campaigndash-backend/internal/model"
	"github.com/unclebandit/campaigndash-backend/internal/repository"
)

const demoUserID = "00000000-0000-0000-0000-000000000001"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	db.Init()

	customerRepo := &repository.CustomerRepository{DB: db.DB}
	audienceRepo := &repository.AudienceRepository{DB: db.DB}

	customers := []model.Customer{
		{Email: "alice@example.com", FirstName: "Alice", LastName: "Smith", Location: "Nairobi", Tags: []string{"vip"}, TotalSpent: 1250},
		{Email: "bob@example.com", FirstName: "Bob", LastName: "Jones", Location: "Mombasa", Tags: []string{"new"}, TotalSpent: 80},
		{Email: "carol@example.com", FirstName: "Carol", LastName: "White", Location: "Kisumu", Tags: []string{"vip", "newsletter"}, TotalSpent: 640},
	}
	for i := range customers {
		if existing, err := customerRepo.GetByEmail(customers[i].Email); err != nil {
			log.Fatal("failed to check customer:", err)
		} else if existing != nil {
			continue
		}
		if err := customerRepo.Insert(&customers[i]); err != nil {
			log.Fatal("failed to seed customer:", err)
		}
	}

	contacts := []model.AudienceMember{
		{UserID: demoUserID, Name: "Alice Smith", Email: "alice@example.com", Tag: "vip"},
		{UserID: demoUserID, Name: "Bob Jones", Email: "bob@example.com", Tag: "new"},
		{UserID: demoUserID, Name: "Carol White", Email: "carol@example.com", Tag: "vip"},
	}
	for i := range contacts {
		if err := audienceRepo.Create(&contacts[i]); err != nil {
			log.Fatal("failed to seed contact:", err)
		}
	}

	log.Println("✅ Seeded demo customers and audience contacts")
}
