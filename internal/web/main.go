// Package web wires the fiber app: middleware, health and metrics endpoints
// and the api handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	fiberlogger "github.com/earg-org/earg-api/internal/logger/adapter/fiber"
	"github.com/earg-org/earg-api/internal/web/handler"
	"github.com/earg-org/earg-api/internal/web/handler/admin"
	"github.com/earg-org/earg-api/internal/web/handler/content"
	"github.com/earg-org/earg-api/internal/web/handler/message"
	"github.com/earg-org/earg-api/internal/web/handler/order"
	"github.com/earg-org/earg-api/internal/web/handler/product"
	"github.com/earg-org/earg-api/internal/web/handler/resource"
	"github.com/earg-org/earg-api/internal/web/handler/review"
	"github.com/earg-org/earg-api/internal/web/handler/settings"
	"github.com/earg-org/earg-api/internal/web/handler/wishlist"
	authmiddleware "github.com/earg-org/earg-api/internal/web/middleware/auth"
	"github.com/earg-org/earg-api/internal/web/session"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/checkalive"
	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	appName       = "EARG API Server"
	corsMaxAge    = 24 * 60 * 60
	wildcardOrigin = "*"
)

var (
	// ErrConfigNil is returned when New is called without a config.
	ErrConfigNil = errors.New("config cannot be nil")
	// ErrDBNil is returned when New is called without a database.
	ErrDBNil = errors.New("db cannot be nil")
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	store        *session.Store
}

// Start starts the web service on the configured host and port.
func (s *Service) Start() error {
	var doneFiber = make(chan bool)

	addr := s.cfg.Webserver.Host + ":" + strconv.Itoa(s.cfg.Webserver.Port)

	go func() {
		err := s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: !s.cfg.DevMode})
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	log.Info().Str("addr", addr).Msg("http server started")

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown

	if err := s.store.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close session storage")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service with every api handler registered.
func New(cfg *config.Config, db *gorm.DB, store *session.Store) (*Service, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if db == nil {
		return nil, ErrDBNil
	}

	app := fiber.New(
		fiber.Config{
			AppName:       appName,
			ServerHeader:  appName,
			BodyLimit:     cfg.Webserver.BodyLimit,
			CaseSensitive: true,
			Immutable:     true,
			ErrorHandler:  handler.ErrorHandler,
		},
	)

	service := &Service{
		App:   app,
		cfg:   cfg,
		db:    db,
		store: store,
	}
	service.alive.Store(true)

	service.use()

	app.Get(handler.RootPath, index)
	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	guard := authmiddleware.New(cfg, store, db)

	handlers := []handler.Service{
		admin.New(store),
		&settings.Handler,
		&content.Handler,
		&product.Handler,
		&resource.Handler,
		&message.Handler,
		&review.Handler,
		&order.Handler,
		&wishlist.Handler,
	}

	for _, h := range handlers {
		if err := h.Init(app, cfg, db, guard); err != nil {
			return nil, err
		}
	}

	return service, nil
}

// use installs the middleware stack.
func (s *Service) use() {
	cfg := s.cfg

	s.App.Use(requestid.New())

	// browsers refuse credentials for a wildcard origin, fiber panics on it
	allowCredentials := cfg.Webserver.CORS.AllowCredentials
	if len(cfg.Webserver.CORS.AllowOrigins) == 0 || slices.Contains(cfg.Webserver.CORS.AllowOrigins, wildcardOrigin) {
		allowCredentials = false
	}

	s.App.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Webserver.CORS.AllowOrigins,
		AllowMethods: []string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut,
			fiber.MethodDelete, fiber.MethodHead, fiber.MethodOptions,
		},
		AllowHeaders: []string{
			fiber.HeaderOrigin,
			fiber.HeaderContentType,
			fiber.HeaderAccept,
			fiber.HeaderAuthorization,
			fiber.HeaderXRequestID,
		},
		AllowCredentials: allowCredentials,
		ExposeHeaders:    []string{fiber.HeaderXRequestID, fiberlogger.HeaderPerformance},
		MaxAge:           corsMaxAge,
	}))

	s.App.Use(securityHeaders)

	if rl := cfg.Webserver.RateLimit; rl.Enabled && rl.Max > 0 {
		s.App.Use(limiter.New(limiter.Config{
			Max:        rl.Max,
			Expiration: rl.Window,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests"})
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == CheckAlivePath || c.Method() == fiber.MethodOptions
			},
		}))

		log.Info().Int("max", rl.Max).Dur("window", rl.Window).Msg("rate limiting enabled")
	}

	s.App.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))

	s.App.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))
}

func securityHeaders(c fiber.Ctx) error {
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "DENY")
	c.Set(fiber.HeaderReferrerPolicy, "strict-origin-when-cross-origin")

	return c.Next()
}

func (s *Service) checkAlive(c fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "shutting down"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

func index(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": appName,
		"status":  "running",
		"endpoints": fiber.Map{
			"products":     product.Path,
			"gallery":      handler.APIPath + "/gallery",
			"stories":      handler.APIPath + "/stories",
			"team":         handler.APIPath + "/team",
			"journey":      handler.APIPath + "/journey",
			"programs":     handler.APIPath + "/programs",
			"messages":     message.Path,
			"reviews":      review.Path,
			"orders":       order.Path,
			"wishlist":     wishlist.Path,
			"settings":     settings.Path + "/:key",
			"categories":   content.CategoriesPath,
			"homeProducts": content.HomeProductsPath,
			"content":      content.SectionsPath + "/:key",
			"admin":        admin.Path,
		},
	})
}
