package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/cache"
	"github.com/dropDatabas3/bicihub/internal/config"
	httpx "github.com/dropDatabas3/bicihub/internal/http"
	accountctrl "github.com/dropDatabas3/bicihub/internal/http/controllers/account"
	adminctrl "github.com/dropDatabas3/bicihub/internal/http/controllers/admin"
	authctrl "github.com/dropDatabas3/bicihub/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/bicihub/internal/http/controllers/health"
	publicctrl "github.com/dropDatabas3/bicihub/internal/http/controllers/public"
	mw "github.com/dropDatabas3/bicihub/internal/http/middlewares"
	"github.com/dropDatabas3/bicihub/internal/http/router"
	accountsvc "github.com/dropDatabas3/bicihub/internal/http/services/account"
	adminsvc "github.com/dropDatabas3/bicihub/internal/http/services/admin"
	authsvc "github.com/dropDatabas3/bicihub/internal/http/services/auth"
	catalogsvc "github.com/dropDatabas3/bicihub/internal/http/services/catalog"
	"github.com/dropDatabas3/bicihub/internal/i18n"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
	"github.com/dropDatabas3/bicihub/internal/session"
	"github.com/dropDatabas3/bicihub/internal/state"
	"github.com/dropDatabas3/bicihub/internal/tenant"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using system environment: %v", err)
	}

	cfgPath := flag.String("config", envOr("BICIHUB_CONFIG", "config.yaml"), "ruta del config YAML")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       envOr("LOG_LEVEL", "info"),
		ServiceName: "bicihub",
	})
	defer func() { _ = logger.Sync() }()
	logg := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Cache (sesiones + stats)
	cacheClient, err := cache.New(cache.Config{
		Driver:     cfg.Cache.Kind,
		Addr:       cfg.Cache.Redis.Addr,
		Password:   cfg.Cache.Redis.Password,
		DB:         cfg.Cache.Redis.DB,
		Prefix:     cfg.Cache.Redis.Prefix,
		DefaultTTL: config.Dur(cfg.Cache.Memory.DefaultTTL),
	})
	if err != nil {
		logg.Fatal("cache init failed", logger.Err(err))
	}
	defer cacheClient.Close()

	// Preferencias locales + resolución de locale
	prefs := state.OpenPrefs(cfg.State.Dir)
	locales := i18n.NewResolver(cfg.Locale.Default, cfg.Locale.Supported)

	// Call wrapper contra el upstream
	client, err := api.New(api.Config{
		BaseURL:      cfg.Upstream.BaseURL,
		APIKey:       cfg.Upstream.APIKey,
		Timeout:      config.Dur(cfg.Upstream.Timeout),
		Locales:      locales,
		StoredLocale: prefs.Locale,
	})
	if err != nil {
		logg.Fatal("api client init failed", logger.Err(err))
	}

	// Estado por entidad + switcher de tenant
	stores := state.New(client)
	switcher := tenant.New(ctx, prefs, stores.TenantScoped())
	switcher.Restore(ctx)

	// Sesiones
	sessions := session.NewStore(cacheClient, session.Config{
		CookieName: cfg.Session.CookieName,
		Domain:     cfg.Session.Domain,
		SameSite:   cfg.Session.SameSite,
		Secure:     cfg.Session.Secure,
		TTL:        config.Dur(cfg.Session.TTL),
	})

	guard := &mw.Guard{
		Profile:   stores.Profile,
		Sessions:  sessions,
		LoginPath: "/login",
		HomePath:  "/",
	}

	// Services y controllers
	catalogService := catalogsvc.NewService(client, stores)
	authService := authsvc.NewService(client, sessions, stores.Profile)
	accountService := accountsvc.NewService(client, stores.Profile, stores.Cart)
	adminResources := adminsvc.NewResources(client, stores, cacheClient)

	handler := router.New(router.Deps{
		Config:   cfg,
		Cache:    cacheClient,
		Prefs:    prefs,
		Locales:  locales,
		Switcher: switcher,
		Guard:    guard,
		Public:   publicctrl.NewControllers(catalogService, switcher),
		Auth:     authctrl.NewControllers(authService, sessions),
		Account:  accountctrl.NewControllers(accountService),
		Admin:    adminctrl.NewControllers(adminResources),
		Health:   healthctrl.NewController(cacheClient),
	})

	srv := httpx.NewServer(cfg.Server.Addr, handler,
		config.Dur(cfg.Server.ReadTimeout), config.Dur(cfg.Server.WriteTimeout))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Fatal("server failed", logger.Err(err))
		}
	case <-ctx.Done():
		logg.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logg.Warn("shutdown incomplete", logger.Err(err))
		}
		switcher.Wait()
	}

	logg.Info("bye")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
