package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "github.com/pingvi095/wifi/internal/adapters/http_server"
	"github.com/pingvi095/wifi/internal/adapters/observability"
	redisad "github.com/pingvi095/wifi/internal/adapters/redis"
	"github.com/pingvi095/wifi/internal/app"
	"github.com/pingvi095/wifi/internal/shared"
	mysqlrepo "github.com/pingvi095/wifi/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	sessions := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	h := &server.Handlers{
		Catalog: app.NewCatalogService(repo, repo),
		Reviews: app.NewReviewService(repo, repo),
		Admin:   app.NewAdminService(repo, repo, sessions, cfg.AdminUser, cfg.AdminPass, cfg.SessionTTL),
	}

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h, rate.NewLimiter(rate.Limit(cfg.ReviewRPS), cfg.ReviewRPS))

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
