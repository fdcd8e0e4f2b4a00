package domain

import "time"

// OrderStatus es el estado de una orden.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem es una línea de orden.
type OrderItem struct {
	BikeID   string `json:"bikeId"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// Order es una orden de compra.
type Order struct {
	ID        string      `json:"id"`
	ProfileID string      `json:"profileId"`
	Items     []OrderItem `json:"items"`
	Total     int64       `json:"total"`
	Currency  string      `json:"currency"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Payment es un registro de pago asociado a una orden.
type Payment struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Provider  string    `json:"provider"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartItem es una línea del carrito del usuario en el tenant actual.
type CartItem struct {
	BikeID   string `json:"bikeId"`
	Quantity int    `json:"quantity"`
}
