package main

import (
	"fmt"
	"github.com/OpenTransitTools/ptoplanner/app/holiday-loader/loader"
	"github.com/OpenTransitTools/ptoplanner/business/data/holidays"
	"github.com/ardanlabs/conf"
	"github.com/nats-io/nats.go"
	logger "log"
	"os"
	"strconv"
	"strings"
	"time"
)

var build = "develop"

func main() {
	log := logger.New(os.Stderr, "HOLIDAY_LOADER : ", logger.LstdFlags|logger.Lmicroseconds|logger.Lshortfile)
	if err := run(log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	var cfg struct {
		conf.Version
		Args conf.Args
		NATS struct {
			Url                  string `conf:"default:nats://localhost:4222"`
			HolidayUpdateSubject string `conf:"default:holidays.updated"`
		}
		Holidays struct {
			All bool `conf:"default:false"`
		}
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Inspect, export and announce reference holiday data"
	const prefix = "HOLIDAY_LOADER"
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

	provider := holidays.MakeProvider()

	switch cfg.Args.Num(0) {
	case "list":
		region, year, err := regionAndYear(cfg.Args)
		if err != nil {
			return err
		}
		return loader.ListHolidays(log, os.Stdout, provider, region, year, cfg.Holidays.All)

	case "states":
		country := cfg.Args.Num(1)
		if len(country) < 1 {
			return fmt.Errorf("expected country with command states")
		}
		return loader.ListStates(os.Stdout, provider, country)

	case "ics":
		region, year, err := regionAndYear(cfg.Args)
		if err != nil {
			return err
		}
		return loader.WriteCalendar(os.Stdout, provider, region, year, cfg.Holidays.All, time.Now())

	case "publish":
		region, year, err := regionAndYear(cfg.Args)
		if err != nil {
			return err
		}
		natsConn, err := nats.Connect(cfg.NATS.Url, nats.Name("holiday-loader"))
		if err != nil {
			return fmt.Errorf("connecting to nats: %w", err)
		}
		defer natsConn.Close()
		if err = loader.PublishUpdate(log, natsConn, cfg.NATS.HolidayUpdateSubject, region.Country, year); err != nil {
			return err
		}
		return natsConn.Flush()

	default:
		fmt.Println("list <country> <year> [state]: list the holidays of a country, or one of its states")
		fmt.Println("states <country>: list the states a country's holidays can be narrowed to")
		fmt.Println("ics <country> <year> [state]: write the holidays as an iCalendar document")
		fmt.Println("publish <country> <year>: tell running planners to reload the holidays of a country")
		usage, err := conf.Usage(prefix, &cfg)
		if err != nil {
			return fmt.Errorf("generating config usage: %w", err)
		}
		fmt.Println(usage)
	}
	return nil
}

//regionAndYear reads the <country> <year> [state] arguments shared by most commands
func regionAndYear(args conf.Args) (holidays.Region, int, error) {
	region := holidays.Region{Country: args.Num(1), State: strings.ToUpper(args.Num(3))}
	if len(region.Country) < 1 {
		return region, 0, fmt.Errorf("expected country and year with command %s", args.Num(0))
	}
	yearString := args.Num(2)
	year, err := strconv.Atoi(yearString)
	if err != nil {
		return region, 0, fmt.Errorf("unable to parse year %s, error: %w", yearString, err)
	}
	return region, year, nil
}
