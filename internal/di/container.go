package di

import (
	"context"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/handler"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/service"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/session"
	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/config"
	"go.uber.org/zap"
)

// Container holds all dependencies for the gateway
type Container struct {
	// Infrastructure
	Sessions session.Store

	// Services
	AuthService    *service.AuthService
	VenueService   *service.VenueService
	BookingService *service.BookingService

	// Handlers
	AuthHandler    *handler.AuthHandler
	VenueHandler   *handler.VenueHandler
	BookingHandler *handler.BookingHandler
	ProfileHandler *handler.ProfileHandler
	HealthHandler  *handler.HealthHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	App      config.AppConfig
	API      service.HolidazeAPI
	Sessions session.Store
	Checks   map[string]func(context.Context) error
	Logger   *zap.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		Sessions: cfg.Sessions,
	}

	// Initialize services
	c.AuthService = service.NewAuthService(cfg.API, cfg.Sessions, cfg.Logger)
	c.VenueService = service.NewVenueService(cfg.API, cfg.Logger)
	c.BookingService = service.NewBookingService(cfg.API, cfg.Logger)

	// Initialize handlers
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.VenueHandler = handler.NewVenueHandler(c.VenueService, c.BookingService)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)
	c.ProfileHandler = handler.NewProfileHandler(c.AuthService)
	c.HealthHandler = handler.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Checks)

	return c
}
