package models

import (
	"errors"
	"strings"
)

// DefaultRestaurantID is substituted whenever a lookup by id misses.
// The catalog always contains it, so menu screens never dead-end.
const DefaultRestaurantID = "htown"

// ErrUnknownRestaurant signals a catalog lookup miss. Callers recover
// locally by falling back to DefaultRestaurantID instead of failing.
var ErrUnknownRestaurant = errors.New("unknown restaurant")

type Restaurant struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Tags         string     `json:"tags"` // comma-separated category labels
	Rating       string     `json:"rating"`
	FoodType     string     `json:"food_type"`
	DeliveryTime string     `json:"delivery_time"`
	MinOrder     string     `json:"min_order"`
	Position     int        `json:"-" gorm:"not null"` // fixed catalog order
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
}

type MenuItem struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	RestaurantID string  `json:"restaurant_id" gorm:"not null"`
	Name         string  `json:"name" gorm:"not null"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" gorm:"not null"`
	Category     string  `json:"category"` // pizza, burger or drinks
	Tags         string  `json:"tags"`
	Emoji        string  `json:"emoji"`
}

// TagList splits the stored tag string into trimmed labels.
func (r Restaurant) TagList() []string {
	return splitTags(r.Tags)
}

// HasTag reports whether the restaurant carries the given category
// label. Comparison is case-insensitive and against whole tags, not
// substrings.
func (r Restaurant) HasTag(category string) bool {
	for _, tag := range r.TagList() {
		if strings.EqualFold(tag, category) {
			return true
		}
	}
	return false
}

// HasTag matches the item's category column or any of its tags,
// case-insensitively.
func (m MenuItem) HasTag(category string) bool {
	if strings.EqualFold(m.Category, category) {
		return true
	}
	for _, tag := range splitTags(m.Tags) {
		if strings.EqualFold(tag, category) {
			return true
		}
	}
	return false
}

func splitTags(tags string) []string {
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
