package main

import (
	"context"
	"log"

	"github.com/fitzone/gym-booking/config"
	"github.com/fitzone/gym-booking/internal/handler"
	"github.com/fitzone/gym-booking/internal/middleware"
	"github.com/fitzone/gym-booking/internal/repository"
	"github.com/fitzone/gym-booking/internal/service"
	"github.com/fitzone/gym-booking/pkg/auth"
	"github.com/fitzone/gym-booking/pkg/database"
	"github.com/fitzone/gym-booking/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Domain event publisher is optional: without RABBITMQ_URL the service
	// runs standalone
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer pub.Close()
		publisher = pub
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewPlanRepository(db)
	classRepo := repository.NewClassRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	if err := database.SeedMembershipPlans(context.Background(), planRepo); err != nil {
		log.Fatalf("failed to seed membership plans: %v", err)
	}

	// Services
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	membershipSvc := service.NewMembershipService(userRepo, planRepo, publisher)
	authSvc := service.NewAuthService(userRepo, membershipSvc, tokens)
	userSvc := service.NewUserService(userRepo)
	classSvc := service.NewClassService(classRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo, classRepo, bookingRepo)
	bookingSvc := service.NewBookingService(bookingRepo, scheduleRepo, userRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "gym-booking"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	authenticate := middleware.Authenticate(tokens)

	api := e.Group("/api/v1")
	handler.NewAuthHandler(authSvc).RegisterRoutes(api.Group("/auth"))
	handler.NewClassHandler(classSvc).RegisterRoutes(api.Group("/classes", authenticate))
	handler.NewScheduleHandler(scheduleSvc, bookingSvc).RegisterRoutes(api.Group("/schedules", authenticate))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api.Group("/bookings", authenticate))

	memberships := api.Group("/memberships")
	me := api.Group("/users/me", authenticate)
	handler.NewMembershipHandler(membershipSvc).RegisterRoutes(memberships, me)

	userHandler := handler.NewUserHandler(userSvc)
	me.GET("", userHandler.GetMe)
	userHandler.RegisterRoutes(api.Group("/users", authenticate))

	log.Printf("Gym Booking API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
