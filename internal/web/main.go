// Package web assembles the fiber app: middleware, handlers, health and metrics endpoints.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	fiberlogger "github.com/mohozompur-madrasa/madrasa-site/internal/logger/adapter/fiber"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/dashboard"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/gallery"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/heroslide"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/login"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/logout"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/notice"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/password"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/site"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web/handler/upload"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"
	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	appName = "madrasa-site"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Option changes the web service.
type Option func(s *Service)

// WithFastShutdown skips the 503 grace period on shutdown.
func WithFastShutdown(fast bool) Option {
	return func(s *Service) {
		s.fastShutDown = fast
	}
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM, then shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown lets checkalive fail for the configured time, then stops the http server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether the service accepts traffic.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates the web service and registers every handler.
func New(deps *handler.Deps, opts ...Option) (*Service, error) {
	if !deps.Valid() {
		return nil, handler.ErrNilDeps
	}

	cfg := deps.Cfg

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        appName,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      cfg.Media.MaxUploadSize,
			ErrorHandler:   ErrorHandler,
		},
	)

	service := &Service{
		cfg: cfg,
		App: app,
	}

	for _, opt := range opts {
		opt(service)
	}

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{Config: cfg.Log, CheckAliveURI: CheckAlivePath}))
	app.Use(Metrics(CheckAlivePath, MetricsPath))

	if origins := cfg.Webserver.AllowOrigins; origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			// browsers refuse credentials for a wildcard origin
			AllowCredentials: !strings.Contains(origins, "*"),
		}))
	}

	if key := cfg.Webserver.CookieEncryptionKey; key != "" {
		app.Use(encryptcookie.New(encryptcookie.Config{Key: key}))
	}

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	if err := initHandlers(app, deps); err != nil {
		return nil, err
	}

	service.alive.Store(true)

	return service, nil
}

func initHandlers(app *fiber.App, deps *handler.Deps) error {
	services := []handler.Service{
		&login.Service{Limiter: loginLimiter(deps.Cfg.Webserver.LoginRateLimit)},
		&site.Service{},
		&notice.Service{},
		&gallery.Service{},
		&heroslide.Service{},
		&logout.Service{},
		&password.Service{},
		&upload.Service{},
		&dashboard.Service{},
	}

	for _, s := range services {
		if err := s.Init(app, deps); err != nil {
			return err
		}
	}

	return nil
}

// loginLimiter allows max login attempts per minute and IP, nil when max is 0.
func loginLimiter(maxPerMinute int) fiber.Handler {
	if maxPerMinute <= 0 {
		return nil
	}

	return limiter.New(limiter.Config{
		Max:        maxPerMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return handler.Error(c, fiber.StatusTooManyRequests, "Too many login attempts, try again later")
		},
	})
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}

// ErrorHandler answers every error that reached fiber as JSON. Server errors never carry details.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := http.StatusText(code)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError {
			msg = fe.Message
		} else {
			msg = http.StatusText(code)
		}
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Interface("request_id", c.Locals("requestid")).
			Msg("request failed")
	}

	return handler.Error(c, code, msg)
}
