package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/curation-microservice/internal/config"
	"github.com/curation-microservice/internal/delivery/http/handler"
	"github.com/curation-microservice/internal/delivery/http/middleware"
	"github.com/curation-microservice/internal/pkg/errors"
	"github.com/curation-microservice/internal/pkg/utils"
)

// Server - HTTP server built on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	placeHandler *handler.PlaceHandler
	routeHandler *handler.RouteHandler
	likeHandler  *handler.LikeHandler
	feedHandler  *handler.FeedHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	placeHandler *handler.PlaceHandler,
	routeHandler *handler.RouteHandler,
	likeHandler *handler.LikeHandler,
	feedHandler *handler.FeedHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Curation Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:          app,
		config:       cfg,
		logger:       logger,
		placeHandler: placeHandler,
		routeHandler: routeHandler,
		likeHandler:  likeHandler,
		feedHandler:  feedHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(middleware.Identity())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	auth := middleware.RequireIdentity()

	// Places
	places := api.Group("/places")
	places.Get("/", s.placeHandler.ListByDistrict)
	places.Get("/exists", auth, s.placeHandler.Exists)
	places.Get("/liked", auth, s.likeHandler.LikedPlaces)
	places.Get("/:id", s.placeHandler.GetByID)
	places.Get("/:id/likes", s.likeHandler.PlaceInfo)
	places.Post("/", auth, s.placeHandler.Create)
	places.Put("/:id", auth, s.placeHandler.Update)
	places.Delete("/:id", auth, s.placeHandler.Delete)

	// Routes
	routes := api.Group("/routes")
	routes.Get("/liked", auth, s.likeHandler.LikedRoutes)
	routes.Get("/district/:districtId", s.routeHandler.ListPublicByDistrict)
	routes.Get("/:id", s.routeHandler.GetByID)
	routes.Get("/:id/likes", s.likeHandler.RouteInfo)
	routes.Post("/", auth, s.routeHandler.Create)
	routes.Put("/:id", auth, s.routeHandler.Update)
	routes.Delete("/:id", auth, s.routeHandler.Delete)

	// Creator-scoped listings
	creators := api.Group("/creators")
	creators.Get("/:creatorId/places", s.placeHandler.ListByCreator)
	creators.Get("/:creatorId/routes", s.routeHandler.ListByCreator)

	// Likes
	api.Post("/likes", auth, s.likeHandler.Toggle)

	// Follow graph and feed
	follows := api.Group("/follows", auth)
	follows.Post("/", s.feedHandler.Follow)
	follows.Delete("/:id", s.feedHandler.Unfollow)
	follows.Get("/", s.feedHandler.Following)
	api.Get("/feed", auth, s.feedHandler.Feed)
}

func (s *Server) Start() error {
	return s.app.Listen(s.config.GetServerAddr())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := err.(*errors.AppError); ok {
			return c.Status(appErr.StatusCode).JSON(utils.ErrorResponse{Error: appErr})
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		logger.Error("Unhandled error", zap.Error(err))
		return c.Status(500).JSON(utils.ErrorResponse{Error: errors.ErrInternalServer})
	}
}
