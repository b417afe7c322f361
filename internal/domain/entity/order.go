package entity

import "time"

// OrderSize represents the size of an order.
type OrderSize string

const (
	// SizeSmall indicates a small order.
	SizeSmall OrderSize = "SMALL"
	// SizeMedium indicates a medium order.
	SizeMedium OrderSize = "MEDIUM"
	// SizeLarge indicates a large order.
	SizeLarge OrderSize = "LARGE"
	// SizeExtraLarge indicates an extra large order.
	SizeExtraLarge OrderSize = "EXTRA_LARGE"
)

// String returns the string representation of the OrderSize.
func (s OrderSize) String() string {
	return string(s)
}

// IsValid checks if the OrderSize is a valid value.
func (s OrderSize) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	default:
		return false
	}
}

// OrderStatus represents the workflow status of an order.
type OrderStatus string

const (
	// StatusPending is the initial status of every new order.
	StatusPending OrderStatus = "PENDING"
	// StatusInTransit indicates the order is on its way.
	StatusInTransit OrderStatus = "IN_TRANSIT"
	// StatusDelivered indicates the order reached the customer.
	StatusDelivered OrderStatus = "DELIVERED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
// Any valid status may replace any other; no transition graph is enforced.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered:
		return true
	default:
		return false
	}
}

// Order is a purchase record. UserID is a weak reference to the owning User:
// orders placed without a resolvable caller identity stay unattributed, and
// deleting a user does not cascade to their orders.
type Order struct {
	ID        uint        `json:"id"`
	Size      OrderSize   `json:"size"`
	Flavour   string      `json:"flavour"`
	Quantity  int         `json:"quantity"`
	Status    OrderStatus `json:"order_status"`
	UserID    *uint       `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
