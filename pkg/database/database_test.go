package database

import (
	"testing"

	"boxpoint-api/internal/model"
	"boxpoint-api/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectorForDrivers(t *testing.T) {
	for _, driver := range []string{"", "postgres", "mysql", "sqlite"} {
		d, err := dialectorFor(config.DatabaseConfig{Driver: driver, Host: "localhost", Port: 1, Name: "shop"})
		require.NoError(t, err, driver)
		assert.NotNil(t, d, driver)
	}

	_, err := dialectorFor(config.DatabaseConfig{Driver: "oracle"})
	assert.EqualError(t, err, `unsupported database driver "oracle"`)
}

func TestConnectAndMigrateSQLite(t *testing.T) {
	db, err := ConnectDB(config.DatabaseConfig{
		Driver:       "sqlite",
		URL:          "file:connect_test?mode=memory&cache=shared",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, Migrate(db))
	for _, m := range []interface{}{&model.Category{}, &model.Product{}, &model.Image{}, &model.User{}, &model.Cart{}, &model.CartItem{}, &model.Order{}, &model.OrderItem{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
}
