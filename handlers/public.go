package handlers

import (
	"errors"
	"net/http"

	"food-delivery-app/config"
	"food-delivery-app/models"
	"food-delivery-app/search"
	"food-delivery-app/statemachine"

	"github.com/gin-gonic/gin"
)

// allRestaurants loads the catalog in its fixed listing order.
func allRestaurants(preloadMenus bool) []models.Restaurant {
	var restaurants []models.Restaurant
	query := config.DB.Order("position")
	if preloadMenus {
		query = query.Preload("MenuItems")
	}
	query.Find(&restaurants)
	return restaurants
}

// findRestaurant looks up a restaurant by id.
func findRestaurant(id string) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("MenuItems").First(&restaurant, "id = ?", id).Error; err != nil {
		return restaurant, models.ErrUnknownRestaurant
	}
	return restaurant, nil
}

// resolveRestaurant recovers a lookup miss by substituting the
// default restaurant, so menu screens never dead-end. The returned
// flag reports whether the fallback kicked in.
func resolveRestaurant(id string) (models.Restaurant, bool) {
	restaurant, err := findRestaurant(id)
	if errors.Is(err, models.ErrUnknownRestaurant) {
		restaurant, _ = findRestaurant(models.DefaultRestaurantID)
		return restaurant, true
	}
	return restaurant, false
}

// ListRestaurants returns the catalog in fixed order (public)
func ListRestaurants(c *gin.Context) {
	restaurants := allRestaurants(false)

	// Free-text filter by name or tag
	if q := c.Query("search"); q != "" {
		restaurants = search.Restaurants(restaurants, q)
	}
	// Exact tag match, case-insensitive
	if category := c.Query("category"); category != "" {
		restaurants = search.RestaurantsByCategory(restaurants, category)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant, substituting the default
// one for unknown ids
func GetRestaurant(c *gin.Context) {
	restaurant, fallback := resolveRestaurant(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant,
		"fallback":   fallback,
	})
}

// GetMenu returns the menu for a restaurant (public)
func GetMenu(c *gin.Context) {
	restaurant, fallback := resolveRestaurant(c.Param("id"))

	items := restaurant.MenuItems
	if category := c.Query("category"); category != "" {
		items = search.DishesByCategory(items, category)
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"fallback":   fallback,
		"count":      len(items),
		"menu":       items,
	})
}

// SearchCatalog searches restaurants and dishes independently with
// the same substring rule. A blank query returns the full catalog.
func SearchCatalog(c *gin.Context) {
	query := c.Query("q")

	restaurants := allRestaurants(true)

	matchedRestaurants := search.Restaurants(restaurants, query)

	var matchedDishes []models.MenuItem
	for _, r := range restaurants {
		matchedDishes = append(matchedDishes, search.Dishes(r.MenuItems, query)...)
	}

	// Menus are not repeated inside the restaurant results
	for i := range matchedRestaurants {
		matchedRestaurants[i].MenuItems = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"query":            query,
		"restaurant_count": len(matchedRestaurants),
		"dish_count":       len(matchedDishes),
		"restaurants":      matchedRestaurants,
		"dishes":           matchedDishes,
	})
}

// GetDeliveryStages returns the delivery progression shown on the
// tracking screen (great for docs/Postman)
func GetDeliveryStages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stages":      statemachine.AllStages(),
		"description": "Food Delivery Order Progress Stages",
	})
}
