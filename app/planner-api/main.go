package main

import (
	"context"
	"fmt"
	"github.com/OpenTransitTools/ptoplanner/app/planner-api/planner"
	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
	"github.com/OpenTransitTools/ptoplanner/foundation/database"
	"github.com/ardanlabs/conf"
	"github.com/nats-io/nats.go"
	logger "log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var build = "develop"

func main() {
	log := logger.New(os.Stdout, "PLANNER_API : ", logger.LstdFlags|logger.Lmicroseconds|logger.Lshortfile)
	if err := run(log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	var cfg struct {
		conf.Version
		Args conf.Args
		DB   struct {
			Driver     string `conf:"default:pgx"`
			User       string `conf:"default:postgres"`
			Password   string `conf:"default:postgres,noprint"`
			Host       string `conf:"default:0.0.0.0"`
			Name       string `conf:"default:postgres"`
			DisableTLS bool   `conf:"default:true"`
			Path       string `conf:"default:ptoplanner.db"`
		}
		NATS struct {
			Url                  string `conf:"default:nats://localhost:4222"`
			HolidayUpdateSubject string `conf:"default:holidays.updated"`
			SessionUpdateSubject string `conf:"default:planner.session.updated"`
		}
		Web struct {
			HttpPort             int `conf:"default:8080"`
			ExpireSessionSeconds int `conf:"default:86400"`
		}
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Serve PTO planning sessions"
	const prefix = "PLANNER"
	if err := conf.Parse(os.Args[1:], prefix, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			usage, err := conf.Usage(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Println(usage)
			return nil
		case conf.ErrVersionWanted:
			version, err := conf.VersionString(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config version: %w", err)
			}
			fmt.Println(version)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Printf("main : Started : Application initializing : version %s", build)
	defer log.Println("main: Completed")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Printf("main: Config :\n%v\n", out)

	// =========================================================================
	// Start Database

	log.Println("main: Initializing database support")

	db, err := database.Open(database.Config{
		Driver:     cfg.DB.Driver,
		User:       cfg.DB.User,
		Password:   cfg.DB.Password,
		Host:       cfg.DB.Host,
		Name:       cfg.DB.Name,
		DisableTLS: cfg.DB.DisableTLS,
		Path:       cfg.DB.Path,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer func() {
		log.Printf("main: Database Stopping : %s", cfg.DB.Host)
		err = db.Close()
		if err != nil {
			log.Printf("main: error closing database: %v", err)
		}
	}()

	repo := preferences.MakeSQLRepository(db)
	schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = repo.CreateSchema(schemaCtx); err != nil {
		return err
	}

	// =========================================================================
	// Start NATS

	log.Printf("main: Connecting to NATS at %s", cfg.NATS.Url)
	natsConn, err := nats.Connect(cfg.NATS.Url, nats.Name("planner-api"))
	if err != nil {
		return fmt.Errorf("connecting to nats: %w", err)
	}
	defer natsConn.Close()

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	planner.StartServices(log, planner.Config{
		ExpireSessionSeconds: cfg.Web.ExpireSessionSeconds,
		HttpPort:             cfg.Web.HttpPort,
		HolidayUpdateSubject: cfg.NATS.HolidayUpdateSubject,
		SessionUpdateSubject: cfg.NATS.SessionUpdateSubject,
	}, preferences.MakeStore(log, repo), natsConn, shutdown)
	return nil
}
