package server

import (
	"context"
	"fmt"

	auction "auction-front/internal/auctionService"
	"auction-front/internal/clock"
	"auction-front/internal/config"
	"auction-front/internal/health"
	"auction-front/internal/media"
	model "auction-front/internal/models"
	"auction-front/internal/payment"
	"auction-front/internal/repository"
	"auction-front/services/auction/handler"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
)

// App is the assembled service: store, API router and health checks
type App struct {
	Service *auction.AuctionService
	Media   *media.Store
	Health  *health.Handler
	Router  *gin.Engine

	unsubscribe func()
}

// NewApp wires the auction store, payment simulator, media store and routes
// from cfg and seeds the store with listings.
func NewApp(cfg *config.Config, clk clock.Clock, listings []model.Listing) (*App, error) {
	loc := cfg.Location()
	repo := repository.NewMemoryRepo(clk.Now().In(loc), cfg.InitialBalance)
	for _, l := range listings {
		if err := repo.AddListing(l); err != nil {
			return nil, fmt.Errorf("server: seeding listing %s: %w", l.ID, err)
		}
	}

	payments := payment.NewSimulated(cfg.PaymentDelay,
		payment.WithClock(clk),
		payment.WithFailureRate(cfg.PaymentFailureRate),
	)

	svc := auction.NewAuctionService(repo, payments,
		auction.WithClock(clk),
		auction.WithLocation(loc),
		auction.WithUser(model.User{UserID: cfg.UserID, Name: cfg.UserName, AvatarURL: cfg.UserAvatar}),
		auction.WithRequireFunds(cfg.PaymentCheckBalance),
		auction.WithAutoBidIncrement(cfg.AutoBidIncrement),
	)
	unsubscribe := svc.NotifyWatchedBids()

	store := media.NewStore(cfg.MaxUploadBytes, clk)

	healthHandler := health.NewHandler(clk, health.Checker{
		Name: "store",
		Check: func(ctx context.Context) error {
			if len(svc.Listings()) < len(listings) {
				return fmt.Errorf("expected at least %d listings", len(listings))
			}
			return nil
		},
	})

	router := SetupRouter(handler.NewAuctionHandler(svc, store), healthHandler, Options{
		CORSAllowOrigin: cfg.CORSAllowOrigin,
		MaxUploadBytes:  int64(cfg.MaxUploadBytes),
	})

	utils.Info("app_initialized", map[string]any{
		"listings":      len(listings),
		"timezone":      loc.String(),
		"payment_delay": cfg.PaymentDelay.String(),
		"check_balance": cfg.PaymentCheckBalance,
	})

	return &App{
		Service:     svc,
		Media:       store,
		Health:      healthHandler,
		Router:      router,
		unsubscribe: unsubscribe,
	}, nil
}

// Close detaches the app's event subscribers
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}
