package domain

import "time"

// OrderStatus is the scripted lifecycle of a submitted order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	// OrderStatusRejected is an alternate terminal state. No control path in
	// the simulation sets it; it exists for the status vocabulary only.
	OrderStatusRejected OrderStatus = "rejected"
)

// PaymentMethod is the closed set of accepted payment options.
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCash   PaymentMethod = "cash"
	PaymentPix    PaymentMethod = "pix"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCredit, PaymentDebit, PaymentCash, PaymentPix:
		return true
	}
	return false
}

// ReceiptItem is a rendered cart line on a receipt. Component references are
// resolved to names at snapshot time because the receipt outlives the cart.
type ReceiptItem struct {
	Name              string   `json:"name"`
	Quantity          int      `json:"quantity"`
	Price             float64  `json:"price"`
	RemovedComponents []string `json:"removed_components"`
	AddedComponents   []string `json:"added_components"`
}

// OrderReceipt is the transient record built when an order reaches ready.
// It is never persisted; it exists only to render the downloadable receipt.
type OrderReceipt struct {
	OrderID         string        `json:"order_id"`
	Items           []ReceiptItem `json:"items"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerAddress string        `json:"customer_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Total           float64       `json:"total"`
	Date            time.Time     `json:"date"`
	Status          OrderStatus   `json:"status"`
}
