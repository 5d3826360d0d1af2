// Package database provides support for access the database.
package database

import (
	"context"
	"fmt"
	_ "github.com/jackc/pgx/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"net/url"
)

const (
	DriverPostgres = "pgx"
	DriverSqlite   = "sqlite3"
)

// Config is the required properties to use the database.
// Path is only used by the sqlite3 driver, the remaining fields only by postgres.
type Config struct {
	Driver     string
	User       string
	Password   string
	Host       string
	Name       string
	DisableTLS bool
	Path       string
}

// Open knows how to open a database connection based on the configuration.
func Open(cfg Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverSqlite:
		if len(cfg.Path) == 0 {
			return nil, fmt.Errorf("sqlite3 database requires a path")
		}
		return sqlx.Connect(DriverSqlite, cfg.Path)
	case DriverPostgres, "":
		return sqlx.Connect(DriverPostgres, postgresURL(cfg))
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// postgresURL builds the connection string for the pgx driver
func postgresURL(cfg Config) string {
	sslMode := "require"
	if cfg.DisableTLS {
		sslMode = "disable"
	}

	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host,
		Path:     cfg.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// PrepareNamedQueryFromMap wraps boilerplate sqlx to prepare named query from map of ddl parameters
// returns rebound query string and arguments slice
func PrepareNamedQueryFromMap(
	statementString string,
	db *sqlx.DB,
	sqlArgMap map[string]interface{}) (string, []interface{}, error) {

	query, args, err := sqlx.Named(statementString, sqlArgMap)
	if err != nil {
		return query, nil, err
	}
	query, args, err = sqlx.In(query, args...)
	if err != nil {
		return query, nil, err
	}
	query = db.Rebind(query)
	return query, args, nil
}

// PrepareNamedQueryRowsFromMap wraps boilerplate sqlx to prepare named query from map of ddl parameters
// returns sqlx.Rows after executing query with db.QueryxContext, bounded by ctx
func PrepareNamedQueryRowsFromMap(
	ctx context.Context,
	statementString string,
	db *sqlx.DB,
	sqlArgMap map[string]interface{}) (*sqlx.Rows, error) {

	query, args, err := PrepareNamedQueryFromMap(statementString, db, sqlArgMap)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
