package domain

import "time"

type OrderStatus string

const (
	OrderStatusShipping  OrderStatus = "배송 중"
	OrderStatusDelivered OrderStatus = "배송 완료"
)

// OrderItem is a line of a placed order, priced at checkout time.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

// OrderSummary is what the order-complete screen shows.
type OrderSummary struct {
	OrderID   string      `json:"order_id"`
	AmountKRW int64       `json:"amount_krw"`
	PayMethod string      `json:"pay_method"`
	Address   string      `json:"address"`
	ETAText   string      `json:"eta_text"`
	Items     []OrderItem `json:"items"`
	PlacedAt  time.Time   `json:"placed_at"`
}

// OrderHistoryEntry is a row of the order history screen.
type OrderHistoryEntry struct {
	ID     int64       `json:"id"`
	Date   string      `json:"date"`
	Items  string      `json:"items"`
	Total  int64       `json:"total"`
	Status OrderStatus `json:"status"`
}

type WishItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
