package entities

import (
	"encoding/json"
	"errors"
	"time"
)

// Common errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// OrderValidationError describes why an order was rejected. The message is
// safe to return to the client verbatim.
type OrderValidationError struct {
	Message string
}

func (e *OrderValidationError) Error() string {
	return e.Message
}

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	// OrderStatusPending is the only status ever assigned. Orders are
	// created pending and no transition logic exists.
	OrderStatusPending OrderStatus = "pending"
)

// Product represents an item in the catalog
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
}

// User represents a registered customer. Besides the numeric ID the profile
// carries arbitrary fields which are preserved through JSON round-trips; the
// service never writes users, so no schema is imposed on them.
type User struct {
	ID      int
	Profile map[string]interface{}
}

// MarshalJSON flattens the profile fields alongside the id.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Profile)+1)
	for k, v := range u.Profile {
		out[k] = v
	}
	out["id"] = u.ID
	return json.Marshal(out)
}

// UnmarshalJSON extracts the id and keeps every other field in the profile.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if id, ok := raw["id"].(float64); ok {
		u.ID = int(id)
	}
	delete(raw, "id")
	u.Profile = raw

	return nil
}

// OrderItem is a point-in-time snapshot of a product at order creation.
// Name and price are copied from the catalog so later product edits do not
// rewrite order history.
type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order represents a placed order
type Order struct {
	ID        int         `json:"id"`
	UserID    int         `json:"userId"`
	Products  []OrderItem `json:"products"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CartItem is a single line in a user's shopping cart
type CartItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}
