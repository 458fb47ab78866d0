package config_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-delivery-app/config"
	"food-delivery-app/models"
)

func openSeeded(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Restaurant{}, &models.MenuItem{}))
	require.NoError(t, config.SeedCatalog(db))
	return db
}

func TestSeedCatalog(t *testing.T) {
	db := openSeeded(t)

	var restaurants []models.Restaurant
	db.Order("position").Preload("MenuItems").Find(&restaurants)
	require.Len(t, restaurants, 7)

	assert.Equal(t, "sunny", restaurants[0].ID)
	assert.Equal(t, "juice", restaurants[6].ID)

	for _, r := range restaurants {
		assert.Len(t, r.MenuItems, 6, "restaurant %s", r.ID)
		for _, item := range r.MenuItems {
			assert.Equal(t, r.ID, item.RestaurantID)
			assert.Greater(t, item.Price, 0.0)
			assert.Contains(t, []string{"pizza", "burger", "drinks"}, item.Category)
		}
	}
}

func TestSeedContainsDefaultRestaurant(t *testing.T) {
	db := openSeeded(t)

	var htown models.Restaurant
	err := db.First(&htown, "id = ?", models.DefaultRestaurantID).Error
	require.NoError(t, err, "the fallback restaurant must always exist")
	assert.Equal(t, "H Town Burger", htown.Name)
	assert.True(t, htown.HasTag("burger"))
}
