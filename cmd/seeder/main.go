package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/pingvi095/wifi/internal/adapters/observability"
	"github.com/pingvi095/wifi/internal/domain"
	"github.com/pingvi095/wifi/internal/shared"
	mysqlrepo "github.com/pingvi095/wifi/internal/storage/mysql"
)

type seedPlace struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Address     string `json:"address"`
	WifiQuality string `json:"wifi_quality"`
	WorkHours   string `json:"work_hours"`
	Description string `json:"description"`
	PhotoPath   string `json:"photo_path"`
	Contact     string `json:"contact"`
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var seeds []seedPlace
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, s := range seeds {
		hours, err := domain.NormalizeWorkHours(s.WorkHours)
		if err != nil {
			log.Warn().Str("name", s.Name).Str("work_hours", s.WorkHours).Msg("skipping: bad work hours")
			continue
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(p domain.Place) {
			defer wg.Done()
			defer sem.Release(1)

			id, err := repo.CreatePlace(ctx, p)
			if err != nil {
				log.Warn().Str("name", p.Name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Int64("id", id).Str("name", p.Name).Msg("seed ok")
		}(domain.Place{
			Name:        s.Name,
			Type:        s.Type,
			Address:     s.Address,
			WifiQuality: s.WifiQuality,
			WorkHours:   hours,
			Description: s.Description,
			PhotoPath:   s.PhotoPath,
			Contact:     s.Contact,
		})
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
