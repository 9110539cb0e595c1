package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/showtimestaff/event-staffing/backend/internal/config"
	"github.com/showtimestaff/event-staffing/backend/internal/repository"
	"github.com/showtimestaff/event-staffing/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var managerCount int
	var crewCount int
	var eventsPerManager int

	flag.IntVar(&managerCount, "managers", 3, "number of random managers to insert")
	flag.IntVar(&crewCount, "crew", 20, "number of random crew members to insert")
	flag.IntVar(&eventsPerManager, "events", 4, "number of random events to insert per manager")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect; ping to fail fast on a bad DSN
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if managerCount <= 0 || crewCount <= 0 || eventsPerManager < 0 {
		logger.Error("invalid seed parameters",
			slog.Int("managers", managerCount),
			slog.Int("crew", crewCount),
			slog.Int("events", eventsPerManager),
		)
		os.Exit(1)
	}

	seeder := seed.NewSeeder(cfg, repo)
	if err := seeder.Seed(managerCount, crewCount, eventsPerManager); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding finished",
		slog.Int("managers", managerCount),
		slog.Int("crew", crewCount),
		slog.Int("events_per_manager", eventsPerManager),
	)
}
