// cmd/web/main.go
//
// apidemo – HTTP entry point.
//
// Start-up sequence
// -----------------
//
//  1. Load env vars (.env merged into the process environment; real
//     variables always win).
//
//  2. Build the immutable Config.  Any invalid value aborts start-up.
//
//  3. Start the daily rotating logger (tees to console when running in a TTY)
//     and install it as the zap global.
//
//  4. In production, warn about DATABASE_URL / JWT_SECRET if unset.
//
//  5. Open the optional GeoLite2 database (GEOIP_DB).
//
//  6. Build components and the root router, then serve until SIGINT or
//     SIGTERM and drain in-flight requests.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yanizio/apidemo/components/client"
	"github.com/yanizio/apidemo/components/health"
	"github.com/yanizio/apidemo/components/text"
	"github.com/yanizio/apidemo/components/users"
	"github.com/yanizio/apidemo/internal/component"
	"github.com/yanizio/apidemo/internal/config"
	"github.com/yanizio/apidemo/internal/logger"
	"github.com/yanizio/apidemo/internal/redact"
	"github.com/yanizio/apidemo/internal/requestinfo"
	"github.com/yanizio/apidemo/internal/routing"
	"github.com/yanizio/apidemo/internal/server"
)

const shutdownGrace = 10 * time.Second

// loadEnv merges .env when present.  godotenv never overrides variables
// already set in the environment.
func loadEnv() {
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	if err := run(); err != nil {
		log.Fatalf("apidemo: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logOut, err := logger.New(cfg.Log(), runningInTTY())
	if err != nil {
		return fmt.Errorf("start logger: %w", err)
	}
	defer func() { _ = logOut.Sync() }()
	undo := zap.ReplaceGlobals(logOut.Desugar())
	defer undo()

	//
	// ── 1.  Production-only secrets check ───────────────────────────────
	//
	if cfg.IsProduction() {
		var missing *config.MissingConfigError
		if err := cfg.ValidateRequired(config.KeyDatabaseURL, config.KeyJWTSecret); errors.As(err, &missing) {
			logOut.Warnw("required production settings are missing", "keys", missing.Keys)
		}
	}
	if db := cfg.Database(); db.URL != "" {
		logOut.Infow("database configured",
			"url", redact.String(db.URL),
			"pool_size", db.PoolSize,
			"retry_attempts", db.RetryAttempts,
		)
	}

	//
	// ── 2.  Optional GeoLite2 database ──────────────────────────────────
	//
	var geo requestinfo.GeoLookup
	if path := cfg.String(config.KeyGeoIPDB); path != "" {
		db, err := requestinfo.OpenGeo(path)
		if err != nil {
			logOut.Warnw("geo lookups disabled", "path", path, "err", err)
		} else {
			defer db.Close()
			geo = db
		}
	}

	//
	// ── 3.  Components + router ─────────────────────────────────────────
	//
	store := users.NewStore(users.SeedUsers()...)
	handler, err := routing.New(routing.Deps{
		Config: cfg,
		Log:    logOut,
		Geo:    geo,
		Components: []component.Component{
			health.New(),
			users.New(store, logOut),
			text.New(logOut),
			&client.Comp{},
		},
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	//
	// ── 4.  Serve until signalled ───────────────────────────────────────
	//
	srvCfg := cfg.Server()
	srv := server.New(srvCfg.Addr(), handler, srvCfg.Timeout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logOut.Infow("Server started",
			"addr", srv.Addr,
			"environment", cfg.String(config.KeyEnv),
			"users", store.Len(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logOut.Infow("shutting down", "grace", shutdownGrace)
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		logOut.Errorw("server stopped with error", "err", err)
		return err
	}
	logOut.Info("server stopped")
	return nil
}
