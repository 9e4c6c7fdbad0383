package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/config"
	"tourcrm/internal/database"
	"tourcrm/internal/middleware"
	"tourcrm/internal/modules/auth"
	"tourcrm/internal/modules/booking"
	"tourcrm/internal/modules/category"
	"tourcrm/internal/modules/customer"
	"tourcrm/internal/modules/dashboard"
	"tourcrm/internal/modules/events"
	"tourcrm/internal/modules/lead"
	"tourcrm/internal/modules/tour"
	"tourcrm/internal/modules/tourdate"
	"tourcrm/internal/modules/user"
	jwtsvc "tourcrm/internal/pkg/jwt"
	"tourcrm/internal/repository"
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
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tourRepo := repository.NewTourRepository(db)
	tourDateRepo := repository.NewTourDateRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := events.NewHub()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	categoryService := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categoryService)

	tourService := tour.NewService(tourRepo, tourDateRepo)
	tourHandler := tour.NewHandler(tourService)

	tourDateService := tourdate.NewService(tourDateRepo)
	tourDateHandler := tourdate.NewHandler(tourDateService)

	customerService := customer.NewService(customerRepo, leadRepo, bookingRepo)
	customerHandler := customer.NewHandler(customerService)

	bookingService := booking.NewService(bookingRepo, tourDateRepo, customerService, hub)
	bookingHandler := booking.NewHandler(bookingService)

	leadService := lead.NewService(leadRepo, customerService, bookingService)
	leadHandler := lead.NewHandler(leadService)

	dashboardService := dashboard.NewService(bookingRepo, tourRepo, leadRepo, tourDateRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	eventsHandler := events.NewHandler(hub, j)

	if cfg.AppEnv == "production" || cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Tour CRM API is running"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Route not found",
			},
		})
	})

	v1 := r.Group("/api/v1")
	{
		// public; the websocket handler does its own token check
		authHandler.RegisterRoutes(v1)
		eventsHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			categoryHandler.RegisterRoutes(protected)
			tourHandler.RegisterRoutes(protected)
			tourDateHandler.RegisterRoutes(protected)
			customerHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			leadHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			userHandler.RegisterRoutes(protected)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("listening on :%s env=%s", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hub.Close()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("database close: %v", err)
	}
}
