package repositoryImp

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/RahulHansraj/FarmToMarket/database"
	"github.com/RahulHansraj/FarmToMarket/entities"
)

func setup(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestListOrdersByName(t *testing.T) {
	db := setup(t)
	require.NoError(t, db.Create(&[]entities.Crop{{Name: "Wheat"}, {Name: "Apple"}, {Name: "Onion"}}).Error)

	out, err := New(db).List()
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, "Apple", out[0].Name)
	require.Equal(t, "Onion", out[1].Name)
	require.Equal(t, "Wheat", out[2].Name)
}

func TestListEmptySafe(t *testing.T) {
	out, err := New(setup(t)).List()
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestFindOrCreate(t *testing.T) {
	db := setup(t)
	r := New(db)

	created, err := r.FindOrCreate("Dragonfruit")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	// case-insensitive resolve, no duplicate row
	found, err := r.FindOrCreate("dragonFRUIT")
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)

	var n int64
	require.NoError(t, db.Model(&entities.Crop{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}
