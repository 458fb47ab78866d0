package orders

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery-app/cart"
	"food-delivery-app/models"
)

var orderNumberPattern = regexp.MustCompile(`^FD-[0-9A-F]{8}$`)

func TestPlaceRejectsEmptyCart(t *testing.T) {
	s := NewService()
	c := cart.New()

	order, err := s.Place("session-1", c)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Nil(t, order, "no order number may be produced")
	assert.Equal(t, 0, c.ItemCount())

	_, err = s.Tracking("session-1")
	assert.ErrorIs(t, err, ErrNoActiveOrder, "failed placement must not transition state")
}

func TestPlaceClearsCartAndRecordsOrder(t *testing.T) {
	s := NewService()
	c := cart.New()
	c.Add("Neapolitan Pizza", 490)
	c.Add("Italian Soda", 120)

	order, err := s.Place("session-1", c)
	require.NoError(t, err)

	assert.Regexp(t, orderNumberPattern, order.OrderNumber)
	assert.Equal(t, models.StatusPlaced, order.Status)
	assert.Equal(t, DriverName, order.DriverName)
	assert.Equal(t, DriverPhone, order.DriverPhone)
	assert.Equal(t, Vehicle, order.Vehicle)
	assert.Equal(t, 0, c.ItemCount(), "placement is the only path that clears the cart")

	tracked, err := s.Tracking("session-1")
	require.NoError(t, err)
	assert.Equal(t, order, tracked)
}

func TestConsecutivePlacementsGetFreshNumbers(t *testing.T) {
	s := NewService()
	c := cart.New()

	c.Add("Calzone", 420)
	first, err := s.Place("session-1", c)
	require.NoError(t, err)

	c.Add("Limoncello", 250)
	second, err := s.Place("session-1", c)
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)

	// The new order overwrites the old one — no history
	tracked, err := s.Tracking("session-1")
	require.NoError(t, err)
	assert.Equal(t, second.OrderNumber, tracked.OrderNumber)
}

func TestTrackingRequiresPlacedOrder(t *testing.T) {
	s := NewService()
	_, err := s.Tracking("nobody")
	assert.ErrorIs(t, err, ErrNoActiveOrder)
}

func TestTrackingIsSessionScoped(t *testing.T) {
	s := NewService()
	c := cart.New()
	c.Add("Miso Soup", 180)

	_, err := s.Place("session-a", c)
	require.NoError(t, err)

	_, err = s.Tracking("session-b")
	assert.ErrorIs(t, err, ErrNoActiveOrder)
}

func TestEstimatedDeliveryFormat(t *testing.T) {
	s := NewService()
	s.now = func() time.Time {
		return time.Date(2024, 6, 1, 15, 10, 0, 0, time.UTC)
	}

	c := cart.New()
	c.Add("Green Detox", 150)
	order, err := s.Place("session-1", c)
	require.NoError(t, err)

	assert.Equal(t, "3:25 PM (15min)", order.EstimatedDelivery)
	assert.Equal(t, time.Date(2024, 6, 1, 15, 10, 0, 0, time.UTC), order.PlacedAt)
}

func TestFormatETA(t *testing.T) {
	cases := []struct {
		placed time.Time
		want   string
	}{
		{time.Date(2024, 6, 1, 11, 50, 0, 0, time.UTC), "12:05 PM (15min)"},
		{time.Date(2024, 6, 1, 23, 50, 0, 0, time.UTC), "12:05 AM (15min)"},
		{time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), "8:15 AM (15min)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatETA(tc.placed))
	}
}

func TestNewOrderNumberIsFreshEachCall(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := NewOrderNumber()
		require.Regexp(t, orderNumberPattern, n)
		assert.False(t, seen[n], "order number %q repeated", n)
		seen[n] = true
	}
}
