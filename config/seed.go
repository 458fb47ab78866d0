package config

import (
	"food-delivery-app/models"

	"gorm.io/gorm"
)

// SeedCatalog inserts the fixed restaurant catalog. Positions pin the
// listing order; prices are ETB.
func SeedCatalog(db *gorm.DB) error {
	restaurants := []models.Restaurant{
		{
			ID: "sunny", Name: "Sunny Burger and Pizza",
			Tags:   "Pizza, Burger, Fast Food",
			Rating: "★★★★☆(4.0)", FoodType: "Burger & Pizza",
			DeliveryTime: "25 min", MinOrder: "450 ETB", Position: 1,
		},
		{
			ID: "rome", Name: "Rome 1960 Chicken, Pizza and Burger",
			Tags:   "Chicken, Pizza, Burger, Italian",
			Rating: "★★★★☆(4.1)", FoodType: "Chicken, Pizza & Burger",
			DeliveryTime: "20 min", MinOrder: "500 ETB", Position: 2,
		},
		{
			ID: "htown", Name: "H Town Burger",
			Tags:   "Burger, American, Fast Food",
			Rating: "★★★★★(4.2)", FoodType: "Burger",
			DeliveryTime: "15-20 min", MinOrder: "500 ETB", Position: 3,
		},
		{
			ID: "venezia", Name: "Venezia – Italian Restaurant",
			Tags:   "Italian, Pasta, Pizza, Fine Dining",
			Rating: "★★★★☆(4.3)", FoodType: "Italian",
			DeliveryTime: "25 min", MinOrder: "550 ETB", Position: 4,
		},
		{
			ID: "tokyo", Name: "Tokyo Sushi House",
			Tags:   "Sushi, Japanese, Asian, Seafood",
			Rating: "★★★★★(4.5)", FoodType: "Japanese",
			DeliveryTime: "30 min", MinOrder: "600 ETB", Position: 5,
		},
		{
			ID: "napoli", Name: "Napoli Pizza House",
			Tags:   "Pizza, Italian, Wood Fired",
			Rating: "★★★★☆(4.2)", FoodType: "Pizza",
			DeliveryTime: "20 min", MinOrder: "500 ETB", Position: 6,
		},
		{
			ID: "juice", Name: "Fresh Juice Bar",
			Tags:   "Juice, Drinks, Healthy, Smoothies",
			Rating: "★★★★☆(4.0)", FoodType: "Drinks",
			DeliveryTime: "15 min", MinOrder: "300 ETB", Position: 7,
		},
	}

	menus := map[string][]models.MenuItem{
		"htown": {
			{Name: "H-Town Special Burger", Description: "Boasts a flavorful beef patty, fresh lettuce, juicy tomatoes, and tangy condiments", Price: 450.00, Category: "burger", Tags: "Burger, American", Emoji: "🍔"},
			{Name: "Chicken Burger", Description: "Features a juicy chicken patty, crisp lettuce, ripe tomatoes, and savory condiments", Price: 475.00, Category: "burger", Tags: "Burger, Chicken", Emoji: "🍗"},
			{Name: "Chef Burger", Description: "Succulent beef patty, melted cheese, caramelized onions, and tangy special sauce", Price: 420.00, Category: "burger", Tags: "Burger", Emoji: "👨‍🍳"},
			{Name: "French Fries", Description: "Crispy golden fries with seasoning", Price: 120.00, Category: "burger", Tags: "Sides", Emoji: "🍟"},
			{Name: "Coca-Cola", Description: "Refreshing carbonated drink", Price: 50.00, Category: "drinks", Tags: "Drinks, Soda", Emoji: "🥤"},
			{Name: "Milkshake", Description: "Creamy vanilla milkshake", Price: 150.00, Category: "drinks", Tags: "Drinks", Emoji: "🥛"},
		},
		"sunny": {
			{Name: "Sunny Special Pizza", Description: "Loaded with mozzarella, pepperoni, mushrooms, and bell peppers", Price: 550.00, Category: "pizza", Tags: "Pizza", Emoji: "🍕"},
			{Name: "BBQ Burger", Description: "Grilled beef patty with BBQ sauce, onions, and cheese", Price: 480.00, Category: "burger", Tags: "Burger, BBQ", Emoji: "🍔"},
			{Name: "Cheese Burger", Description: "Classic beef burger with double cheese and special sauce", Price: 430.00, Category: "burger", Tags: "Burger, American", Emoji: "🍔"},
			{Name: "Garlic Bread", Description: "Toasted bread with garlic butter", Price: 180.00, Category: "pizza", Tags: "Sides", Emoji: "🍞"},
			{Name: "Pepsi", Description: "Cold refreshing soda", Price: 45.00, Category: "drinks", Tags: "Drinks, Soda", Emoji: "🥤"},
			{Name: "Water", Description: "Bottled mineral water", Price: 30.00, Category: "drinks", Tags: "Drinks", Emoji: "💧"},
		},
		"rome": {
			{Name: "Roman Chicken", Description: "Grilled chicken with Italian herbs and spices", Price: 520.00, Category: "burger", Tags: "Chicken, Italian", Emoji: "🍗"},
			{Name: "Classic Pizza", Description: "Traditional Italian pizza with fresh ingredients", Price: 490.00, Category: "pizza", Tags: "Pizza, Italian", Emoji: "🍕"},
			{Name: "Italian Burger", Description: "Burger with Italian seasoning and mozzarella", Price: 460.00, Category: "burger", Tags: "Burger, Italian", Emoji: "🍔"},
			{Name: "Caesar Salad", Description: "Fresh salad with Caesar dressing", Price: 280.00, Category: "burger", Tags: "Salad", Emoji: "🥗"},
			{Name: "Red Wine", Description: "Italian red wine glass", Price: 350.00, Category: "drinks", Tags: "Drinks, Wine", Emoji: "🍷"},
			{Name: "Espresso", Description: "Strong Italian coffee", Price: 120.00, Category: "drinks", Tags: "Drinks, Coffee", Emoji: "☕"},
		},
		"venezia": {
			{Name: "Pasta Carbonara", Description: "Creamy pasta with eggs, cheese, and bacon", Price: 380.00, Category: "pizza", Tags: "Pasta, Italian", Emoji: "🍝"},
			{Name: "Margherita Pizza", Description: "Classic tomato and mozzarella pizza", Price: 450.00, Category: "pizza", Tags: "Pizza, Vegetarian", Emoji: "🍕"},
			{Name: "Tiramisu", Description: "Traditional Italian dessert", Price: 280.00, Category: "burger", Tags: "Dessert, Italian", Emoji: "🍰"},
			{Name: "Lasagna", Description: "Layered pasta with meat sauce", Price: 420.00, Category: "pizza", Tags: "Pasta, Italian", Emoji: "🍝"},
			{Name: "White Wine", Description: "Italian white wine glass", Price: 320.00, Category: "drinks", Tags: "Drinks, Wine", Emoji: "🍷"},
			{Name: "Cappuccino", Description: "Italian coffee with milk foam", Price: 150.00, Category: "drinks", Tags: "Drinks, Coffee", Emoji: "☕"},
		},
		"tokyo": {
			{Name: "Salmon Sushi", Description: "Fresh salmon sushi with rice", Price: 520.00, Category: "burger", Tags: "Sushi, Japanese, Seafood", Emoji: "🍣"},
			{Name: "Chicken Teriyaki", Description: "Grilled chicken with teriyaki sauce", Price: 480.00, Category: "burger", Tags: "Chicken, Japanese", Emoji: "🍗"},
			{Name: "Miso Soup", Description: "Traditional Japanese soup", Price: 180.00, Category: "drinks", Tags: "Soup, Japanese", Emoji: "🍜"},
			{Name: "California Roll", Description: "Crab and avocado sushi roll", Price: 450.00, Category: "burger", Tags: "Sushi, Japanese, Seafood", Emoji: "🍣"},
			{Name: "Green Tea", Description: "Japanese green tea", Price: 100.00, Category: "drinks", Tags: "Drinks, Tea", Emoji: "🍵"},
			{Name: "Sake", Description: "Japanese rice wine", Price: 400.00, Category: "drinks", Tags: "Drinks, Japanese", Emoji: "🍶"},
		},
		"napoli": {
			{Name: "Neapolitan Pizza", Description: "Traditional Neapolitan style pizza", Price: 490.00, Category: "pizza", Tags: "Pizza, Italian", Emoji: "🍕"},
			{Name: "Calzone", Description: "Folded pizza with cheese and ham", Price: 420.00, Category: "pizza", Tags: "Pizza, Italian", Emoji: "🥟"},
			{Name: "Garlic Bread", Description: "Toasted bread with garlic butter", Price: 220.00, Category: "pizza", Tags: "Sides", Emoji: "🍞"},
			{Name: "Quattro Formaggi", Description: "Four cheese pizza", Price: 520.00, Category: "pizza", Tags: "Pizza, Italian", Emoji: "🍕"},
			{Name: "Italian Soda", Description: "Refreshing Italian soda", Price: 120.00, Category: "drinks", Tags: "Drinks, Soda", Emoji: "🥤"},
			{Name: "Limoncello", Description: "Italian lemon liqueur", Price: 250.00, Category: "drinks", Tags: "Drinks", Emoji: "🍸"},
		},
		"juice": {
			{Name: "Orange Juice", Description: "Freshly squeezed orange juice", Price: 120.00, Category: "drinks", Tags: "Juice, Healthy", Emoji: "🧃"},
			{Name: "Mango Smoothie", Description: "Creamy mango smoothie", Price: 180.00, Category: "drinks", Tags: "Smoothie, Healthy", Emoji: "🥭"},
			{Name: "Berry Blast", Description: "Mixed berry smoothie", Price: 200.00, Category: "drinks", Tags: "Smoothie, Healthy", Emoji: "🍓"},
			{Name: "Green Detox", Description: "Kale, spinach, and apple juice", Price: 150.00, Category: "drinks", Tags: "Juice, Healthy", Emoji: "🥬"},
			{Name: "Protein Shake", Description: "Chocolate protein shake", Price: 220.00, Category: "drinks", Tags: "Shake", Emoji: "🥛"},
			{Name: "Iced Coffee", Description: "Cold brewed coffee", Price: 140.00, Category: "drinks", Tags: "Drinks, Coffee", Emoji: "☕"},
		},
	}

	for _, r := range restaurants {
		items := menus[r.ID]
		for i := range items {
			items[i].RestaurantID = r.ID
		}
		r.MenuItems = items
		if err := db.Create(&r).Error; err != nil {
			return err
		}
	}
	return nil
}
