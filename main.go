package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"

	"github.com/spencer-p/tidedash/pkg/data"
	"github.com/spencer-p/tidedash/pkg/handlers"
	"github.com/spencer-p/tidedash/pkg/metrics"
	"github.com/spencer-p/tidedash/pkg/noaa"
	"github.com/spencer-p/tidedash/pkg/series"
)

type Config struct {
	Port     string `default:"8080"`
	Prefix   string `default:"/"`
	TimeZone string `default:"UTC" split_words:"true"`
	LogLevel string `default:"info" split_words:"true"`

	// Zero keeps series until restart.
	SeriesCacheTTL time.Duration `default:"0" split_words:"true"`
	TideCacheTTL   time.Duration `default:"23h" split_words:"true"`
	NOAAURL        string        `default:"https://api.tidesandcurrents.noaa.gov/api/prod/datagetter" envconfig:"NOAA_URL"`

	SessionKey    string `split_words:"true"`
	EncryptionKey string `split_words:"true"`

	PGHost     string `envconfig:"PGHOST"`
	PGPort     string `envconfig:"PGPORT" default:"5432"`
	PGUser     string `envconfig:"PGUSER" default:"postgres"`
	PGPassword string `envconfig:"PGPASSWORD"`
	PGDatabase string `envconfig:"PGDATABASE" default:"tidedash"`
}

func main() {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	logger := newLogger(env.LogLevel)
	slog.SetDefault(logger)

	loc, err := time.LoadLocation(env.TimeZone)
	if err != nil {
		logger.Error("Bad time zone", "tz", env.TimeZone, "err", err)
		os.Exit(1)
	}

	store, err := newStore(env, logger)
	if err != nil {
		logger.Error("Failed to open store", "err", err)
		os.Exit(1)
	}

	h := handlers.New(handlers.Options{
		Builder: series.NewBuilder(
			series.WithLocation(loc),
			series.WithTTL(env.SeriesCacheTTL),
			series.WithLogger(logger),
		),
		Tides: &noaa.Client{
			BaseURL: env.NOAAURL,
			HTTP:    &http.Client{Timeout: 10 * time.Second},
		},
		Store:    store,
		Sessions: handlers.NewSessionStore(env.SessionKey, env.EncryptionKey),
		Location: loc,
		TideTTL:  env.TideCacheTTL,
		Logger:   logger,
	})

	r := mux.NewRouter().StrictSlash(true)
	r.Use(metrics.LatencyHandler)
	r.Handle("/metrics", metrics.Handler())
	s := r.PathPrefix(env.Prefix).Subrouter()
	h.Register(s)

	srv := &http.Server{
		Handler:      r,
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	logger.Info("Listening and serving", "addr", srv.Addr, "prefix", path.Clean(env.Prefix), "tz", loc.String())
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Server stopped", "err", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

// newStore uses Postgres when PGHOST is set and memory otherwise.
func newStore(env Config, logger *slog.Logger) (data.Store, error) {
	if env.PGHost == "" {
		logger.Warn("PGHOST is not set, saved locations will not survive a restart")
		return data.NewMemory(), nil
	}
	return data.NewPostgres(data.PostgresConfig{
		Host:     env.PGHost,
		Port:     env.PGPort,
		User:     env.PGUser,
		Password: env.PGPassword,
		Database: env.PGDatabase,
		TimeZone: env.TimeZone,
	})
}
