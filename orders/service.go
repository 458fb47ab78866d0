package orders

import (
	"errors"
	"strings"
	"sync"
	"time"

	"food-delivery-app/cart"
	"food-delivery-app/models"

	"github.com/google/uuid"
)

// ErrNoActiveOrder is returned when tracking is requested before any
// order has been placed in the session.
var ErrNoActiveOrder = errors.New("no active order")

// Static courier details shown on the tracking screen. There is no
// real dispatch system behind them.
const (
	DriverName  = "Abebe Kebede"
	DriverPhone = "+251911223344"
	Vehicle     = "Dodai Model T6+ [electric]"
)

// DeliveryWindow is added to the placement time for the displayed ETA.
const DeliveryWindow = 15 * time.Minute

// Service runs the order lifecycle per session: no order until a
// successful placement, then Placed until the next placement
// overwrites it. Orders live in memory only.
type Service struct {
	mu     sync.Mutex
	orders map[string]*models.Order
	now    func() time.Time
}

func NewService() *Service {
	return &Service{
		orders: make(map[string]*models.Order),
		now:    time.Now,
	}
}

// Place converts the session's cart into an order. An empty cart
// fails with cart.ErrEmptyCart and changes nothing; on success the
// cart is cleared (the only path that clears it) and the new order
// replaces any previous one.
func (s *Service) Place(sessionID string, c *cart.Cart) (*models.Order, error) {
	if _, err := c.Checkout(); err != nil {
		return nil, err
	}

	placedAt := s.now()
	order := &models.Order{
		OrderNumber:       NewOrderNumber(),
		PlacedAt:          placedAt,
		EstimatedDelivery: FormatETA(placedAt),
		DriverName:        DriverName,
		DriverPhone:       DriverPhone,
		Vehicle:           Vehicle,
		Status:            models.StatusPlaced,
	}

	s.mu.Lock()
	s.orders[sessionID] = order
	s.mu.Unlock()
	return order, nil
}

// Tracking returns the session's placed order, or ErrNoActiveOrder
// when nothing has been placed yet.
func (s *Service) Tracking(sessionID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[sessionID]
	if !ok || order.OrderNumber == "" {
		return nil, ErrNoActiveOrder
	}
	return order, nil
}

// NewOrderNumber generates a fresh order number: "FD-" followed by
// the first 8 hex characters of a random UUID, uppercased.
func NewOrderNumber() string {
	return "FD-" + strings.ToUpper(uuid.NewString()[:8])
}

// FormatETA renders the estimated delivery time as a 12-hour clock
// string with the delivery window suffix, e.g. "3:25 PM (15min)".
func FormatETA(placedAt time.Time) string {
	return placedAt.Add(DeliveryWindow).Format("3:04 PM") + " (15min)"
}
