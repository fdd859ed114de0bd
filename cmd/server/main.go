// cmd/server/main.go
package main

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/unclebandit/campaigndash-backend/internal/auth"
	"github.com/unclebandit/campaigndash-backend/internal/db"
	"github.com/unclebandit/campaigndash-backend/internal/handler"
	"github.com/unclebandit/campaigndash-backend/internal/queue"
	"github.com/unclebandit/campaigndash-backend/internal/repository"
	"github.com/unclebandit/campaigndash-backend/internal/segment"
	"github.com/unclebandit/campaigndash-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()

	// Queue: RabbitMQ when configured, in-process otherwise
	var q queue.Queue
	if url := os.Getenv("AMQP_URL"); url != "" {
		rq, err := queue.NewRabbitQueue(url)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer rq.Close()
		q = rq
	} else {
		mq := queue.NewInMemoryQueue()
		queue.StartCampaignSendSubscriber(mq)
		q = mq
	}

	campaignRepo := &repository.CampaignRepository{DB: db.DB}
	reportRepo := &repository.ReportRepository{DB: db.DB}
	audienceRepo := &repository.AudienceRepository{DB: db.DB}
	customerRepo := &repository.CustomerRepository{DB: db.DB}
	orderRepo := &repository.OrderRepository{DB: db.DB}
	profileRepo := &repository.ProfileRepository{DB: db.DB}

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		ReportRepo:   reportRepo,
		CustomerRepo: customerRepo,
		Queue:        q,
		Estimator:    &segment.Estimator{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))},
	}
	audienceService := &service.AudienceService{Repo: audienceRepo}
	messageService := &service.MessageService{Delay: 1500 * time.Millisecond}
	dashboardService := &service.DashboardService{
		CampaignRepo: campaignRepo,
		AudienceRepo: audienceRepo,
		ReportRepo:   reportRepo,
	}

	campaignHandler := &handler.CampaignHandler{
		Service:  campaignService,
		Messages: messageService,
	}
	audienceHandler := &handler.AudienceHandler{Service: audienceService}
	reportHandler := &handler.ReportHandler{Repo: reportRepo}
	profileHandler := &handler.ProfileHandler{Repo: profileRepo}
	dashboardHandler := &handler.DashboardHandler{Service: dashboardService}
	customerHandler := handler.NewCustomerHandler(customerRepo)
	orderHandler := handler.NewOrderHandler(orderRepo, customerRepo)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
	}))

	// Owner-scoped dashboard routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Post("/campaigns", campaignHandler.CreateCampaign)
		r.Get("/campaigns", campaignHandler.ListCampaigns)
		r.Get("/campaigns/{id}", campaignHandler.GetCampaign)
		r.Post("/campaigns/estimate", campaignHandler.EstimateAudience)
		r.Post("/messages/suggestions", campaignHandler.MessageSuggestions)

		r.Get("/audience", audienceHandler.ListContacts)
		r.Post("/audience", audienceHandler.AddContact)
		r.Patch("/audience/{id}/tag", audienceHandler.UpdateTag)
		r.Delete("/audience/{id}", audienceHandler.DeleteContact)

		r.Get("/reports", reportHandler.ListReports)
		r.Get("/dashboard/stats", dashboardHandler.GetStats)

		r.Get("/profile", profileHandler.GetProfile)
		r.Put("/profile", profileHandler.UpdateProfile)
	})

	// Standalone CRUD endpoints, no session
	r.Handle("/customers", customerHandler)
	r.Handle("/orders", orderHandler)

	log.Println("🚀 Server running on :8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
