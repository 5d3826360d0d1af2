package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/OpenTransitTools/ptoplanner/foundation/database"
	"github.com/jmoiron/sqlx"
	"time"
)

// preferenceRow is a record in the preference table
type preferenceRow struct {
	StorageKey string    `db:"storage_key"`
	Value      string    `db:"value"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// SQLRepository stores preference records in the preference table of a postgres or sqlite database
type SQLRepository struct {
	db *sqlx.DB
}

// MakeSQLRepository builds SQLRepository on db
func MakeSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// CreateSchema creates the preference table if it does not already exist
func (r *SQLRepository) CreateSchema(ctx context.Context) error {
	statementString := "create table if not exists preference ( " +
		"storage_key varchar(64) primary key, " +
		"value text not null, " +
		"updated_at timestamp not null)"
	_, err := r.db.ExecContext(ctx, statementString)
	if err != nil {
		return fmt.Errorf("unable to create preference table: %w", err)
	}
	return nil
}

func (r *SQLRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := database.PrepareNamedQueryFromMap(
		"select value from preference where storage_key = :storage_key",
		r.db,
		map[string]interface{}{"storage_key": key})
	if err != nil {
		return nil, false, err
	}
	var value string
	err = r.db.GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("unable to retrieve preference %s. error: %w", key, err)
	}
	return []byte(value), true, nil
}

func (r *SQLRepository) Put(ctx context.Context, key string, value []byte) error {
	row := preferenceRow{
		StorageKey: key,
		Value:      string(value),
		UpdatedAt:  time.Now().UTC(),
	}
	statementString := "insert into preference ( " +
		"storage_key, " +
		"value, " +
		"updated_at) " +
		"values (" +
		":storage_key, " +
		":value, " +
		":updated_at) " +
		"on conflict (storage_key) do update set " +
		"value = excluded.value, " +
		"updated_at = excluded.updated_at"
	_, err := r.db.NamedExecContext(ctx, statementString, row)
	if err != nil {
		return fmt.Errorf("unable to record preference %s. error: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Keys(ctx context.Context) ([]string, error) {
	rows, err := database.PrepareNamedQueryRowsFromMap(
		ctx,
		"select storage_key from preference where storage_key like :prefix order by storage_key",
		r.db,
		map[string]interface{}{"prefix": storageKeyBase + "_%"})
	if err != nil {
		return nil, fmt.Errorf("unable to list preferences. error: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	keys := make([]string, 0)
	for rows.Next() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
