package preferences

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/OpenTransitTools/ptoplanner/foundation/database"
	"github.com/matryer/is"
)

func makeTestSQLRepository(t *testing.T) *SQLRepository {
	is := is.New(t)
	db, err := database.Open(database.Config{
		Driver: database.DriverSqlite,
		Path:   filepath.Join(t.TempDir(), "prefs.db"),
	})
	is.NoErr(err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	repo := MakeSQLRepository(db)
	is.NoErr(repo.CreateSchema(context.Background()))
	return repo
}

func TestSQLRepository_PutGetKeys(t *testing.T) {
	is := is.New(t)
	repo := makeTestSQLRepository(t)
	ctx := context.Background()

	_, found, err := repo.Get(ctx, StorageKey(2025))
	is.NoErr(err)
	is.True(!found)

	is.NoErr(repo.Put(ctx, StorageKey(2026), []byte(`{"days":"10"}`)))
	is.NoErr(repo.Put(ctx, StorageKey(2025), []byte(`{"days":"12"}`)))
	is.NoErr(repo.Put(ctx, StorageKey(2025), []byte(`{"days":"15"}`)))

	value, found, err := repo.Get(ctx, StorageKey(2025))
	is.NoErr(err)
	is.True(found)
	is.Equal(string(value), `{"days":"15"}`)

	keys, err := repo.Keys(ctx)
	is.NoErr(err)
	is.Equal(keys, []string{"preferences_2025", "preferences_2026"})
}

func TestSQLRepository_KeysHonorsContext(t *testing.T) {
	is := is.New(t)
	repo := makeTestSQLRepository(t)
	is.NoErr(repo.Put(context.Background(), StorageKey(2025), []byte(`{}`)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	keys, err := repo.Keys(ctx)
	is.True(errors.Is(err, context.Canceled))
	is.Equal(keys, nil)
}
