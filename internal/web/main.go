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
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"

	"github.com/ponto-de-aula/ponto-de-aula/internal/config"
	accesslog "github.com/ponto-de-aula/ponto-de-aula/internal/logger/adapter/fiber"
	authmiddleware "github.com/ponto-de-aula/ponto-de-aula/internal/web/middleware/auth"

	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler/login"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler/logout"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler/posts"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler/profile"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler/users"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
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

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// let a load balancer take this instance out of rotation first
	if !s.fastShutDown {
		log.Info().Msgf("graceful shutdown: waiting %d seconds", s.cfg.Webserver.ShutDownTime)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

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
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("sub", func(a, b int) int {
		return a - b
	})
	templateEngine.AddFunc("join", func(items []string) string {
		return strings.Join(items, ", ")
	})

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access log
	app.Use(accesslog.New(accesslog.Config{Config: cfg.Log}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	// session based auth middleware
	app.Use(authmiddleware.Middleware)

	service := &Service{
		cfg: cfg,
		App: app,
	}

	// init handlers (they register their own routes with capability checks)
	if err := login.Handler.Init(app, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to init login handler")
	}

	logout.Handler.Init(app, cfg)
	posts.Handler.Init(app, cfg)
	users.Handler.Init(app, cfg)
	profile.Handler.Init(app, cfg)

	// redirect root to the feed
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/posts")
	})

	return service
}
