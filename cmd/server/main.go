package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/wicketgate/cricket-ticketing/internal/config"
	"github.com/wicketgate/cricket-ticketing/internal/database"
	"github.com/wicketgate/cricket-ticketing/internal/handler"
	"github.com/wicketgate/cricket-ticketing/internal/middleware"
	"github.com/wicketgate/cricket-ticketing/internal/queue"
	"github.com/wicketgate/cricket-ticketing/internal/repository"
	"github.com/wicketgate/cricket-ticketing/internal/router"
)

func main() {
	// .env is a local development convenience; in deployment the
	// variables come from the environment and the file is absent.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories share the one pooled handle.
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	stadiumRepo := repository.NewStadiumRepo(db)
	standRepo := repository.NewStandRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	matchRepo := repository.NewMatchRepo(db)
	matchSeatRepo := repository.NewMatchSeatRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	// Redis is optional; without it the limiter passes everything.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	adminHandler := handler.NewAdminHandler(stadiumRepo, standRepo, seatRepo, matchRepo, matchSeatRepo, bookingRepo)
	fanHandler := handler.NewFanHandler(matchRepo, standRepo, seatRepo, matchSeatRepo, bookingRepo)
	publicHandler := &handler.PublicHandler{
		StadiumRepo:   stadiumRepo,
		StandRepo:     standRepo,
		MatchRepo:     matchRepo,
		MatchSeatRepo: matchSeatRepo,
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler)
	router.RegisterFan(e, fanHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)

	// The booked-tickets consumer logs the sales ledger to disk; it
	// reconnects on its own and never stops the server.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
