// Package commands is the command line interface over a local planning preference file
package commands

import (
	"context"
	"fmt"
	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
	"github.com/OpenTransitTools/ptoplanner/business/optimizer"
	"github.com/OpenTransitTools/ptoplanner/foundation/database"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	logger "log"
	"time"
)

const defaultDatabasePath = "ptoplanner.db"

// environment is shared by every command once the preference file is open
type environment struct {
	log    *logger.Logger
	clock  func() time.Time
	dbPath string
	year   int
	db     *sqlx.DB
	store  *preferences.Store
}

// NewRootCommand builds the planner command tree. clock supplies the current year when --year is not given.
func NewRootCommand(clock func() time.Time) *cobra.Command {
	env := &environment{clock: clock}

	rootCmd := &cobra.Command{
		Use:          "planner",
		Short:        "Plan paid time off around public holidays",
		Long:         `planner keeps per year PTO preferences in a local sqlite file and previews the holidays of a region.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return env.close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&env.dbPath, "db", defaultDatabasePath, "sqlite file preferences are stored in")
	rootCmd.PersistentFlags().IntVar(&env.year, "year", 0, "year to plan, defaults to the current year")

	rootCmd.AddCommand(newDaysCmd(env))
	rootCmd.AddCommand(newStrategyCmd(env))
	rootCmd.AddCommand(newSaturdayCmd(env))
	rootCmd.AddCommand(newPrefsCmd(env))
	rootCmd.AddCommand(newHolidaysCmd(env))
	rootCmd.AddCommand(newStatesCmd(env))
	return rootCmd
}

//open connects to the preference file and creates its table when missing
func (e *environment) open(cmd *cobra.Command) error {
	e.log = logger.New(cmd.ErrOrStderr(), "PLANNER_CLI : ", logger.LstdFlags|logger.Lmicroseconds|logger.Lshortfile)
	db, err := database.Open(database.Config{Driver: database.DriverSqlite, Path: e.dbPath})
	if err != nil {
		return fmt.Errorf("opening preference file %s: %w", e.dbPath, err)
	}
	repo := preferences.MakeSQLRepository(db)
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	if err = repo.CreateSchema(ctx); err != nil {
		_ = db.Close()
		return err
	}
	e.db = db
	e.store = preferences.MakeStore(e.log, repo)
	return nil
}

func (e *environment) close() error {
	if e.db == nil {
		return nil
	}
	err := e.db.Close()
	e.db = nil
	return err
}

//selectedYear returns the --year flag, or the current year when it was not given
func (e *environment) selectedYear() int {
	if e.year > 0 {
		return e.year
	}
	return e.clock().Year()
}

//session starts a planning session for the selected year with its stored preferences applied
func (e *environment) session() *optimizer.Session {
	session := optimizer.MakeSession(optimizer.MakeReducer(e.log, e.store), e.clock)
	session.Dispatch(optimizer.SetSelectedYear{Year: e.selectedYear()})
	return session
}
