package service

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/mghkill/burguer-saas/internal/domain"
	"github.com/mghkill/burguer-saas/internal/store"

	"go.uber.org/zap"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingCustomerInfo = errors.New("customer name, phone and address are required")
	ErrInvalidPayment      = errors.New("invalid payment method")
	ErrOrderInProgress     = errors.New("an order is already in progress")
	ErrReceiptNotFound     = errors.New("receipt not found")
)

// CustomerInfo is the contact block entered at checkout.
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

// OrderTiming holds the fixed delays of the scripted lifecycle.
type OrderTiming struct {
	Accept  time.Duration
	Prepare time.Duration
	Ready   time.Duration
	Reset   time.Duration
}

// OrderState is a snapshot of the simulation for the status endpoint.
type OrderState struct {
	Status  domain.OrderStatus // empty when no order is in progress
	OrderID string             // set once the order reaches ready
}

// OrderService runs the scripted order lifecycle: checkout validates the
// customer fields and then the status advances pending → accepted →
// preparing → ready on fixed delays, unconditionally. At ready a receipt is
// snapshotted from the cart; one delay later the cart is cleared and the
// state returns to none. The rejected status has no control path.
type OrderService interface {
	Checkout(info CustomerInfo, payment domain.PaymentMethod) error
	State() OrderState
	Receipt(orderID string) (string, error)
	Stop()
}

type orderService struct {
	mu      sync.Mutex
	cart    store.CartStore
	catalog store.CatalogStore
	sched   Scheduler
	timing  OrderTiming
	logger  *zap.Logger

	active      bool
	status      domain.OrderStatus
	customer    CustomerInfo
	payment     domain.PaymentMethod
	orderID     string
	receiptText string
	timer       Timer
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(cart store.CartStore, catalog store.CatalogStore, sched Scheduler, timing OrderTiming, logger *zap.Logger) OrderService {
	return &orderService{
		cart:    cart,
		catalog: catalog,
		sched:   sched,
		timing:  timing,
		logger:  logger,
	}
}

// Checkout starts the simulation. It rejects an empty cart, blank customer
// fields, an unknown payment method, and duplicate submissions while a
// previous chain is still running; none of these mutate any state.
func (s *orderService) Checkout(info CustomerInfo, payment domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return ErrOrderInProgress
	}
	if strings.TrimSpace(info.Name) == "" ||
		strings.TrimSpace(info.Phone) == "" ||
		strings.TrimSpace(info.Address) == "" {
		return ErrMissingCustomerInfo
	}
	if !payment.Valid() {
		return ErrInvalidPayment
	}
	if len(s.cart.Items()) == 0 {
		return ErrEmptyCart
	}

	s.active = true
	s.status = domain.OrderStatusPending
	s.customer = info
	s.payment = payment
	s.orderID = ""
	s.receiptText = ""

	s.logger.Info("Order submitted", zap.String("status", string(s.status)))
	s.timer = s.sched.AfterFunc(s.timing.Accept, s.accept)
	return nil
}

func (s *orderService) accept() {
	s.advance(domain.OrderStatusAccepted, s.timing.Prepare, s.prepare)
}

func (s *orderService) prepare() {
	s.advance(domain.OrderStatusPreparing, s.timing.Ready, s.ready)
}

func (s *orderService) advance(status domain.OrderStatus, next time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.status = status
	s.logger.Info("Order status advanced", zap.String("status", string(status)))
	s.timer = s.sched.AfterFunc(next, fn)
}

// ready snapshots the cart into a receipt and schedules the final reset.
func (s *orderService) ready() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.status = domain.OrderStatusReady
	s.orderID = newOrderID()

	receipt := s.buildReceipt()
	s.receiptText = renderReceipt(receipt)

	s.logger.Info("Order ready",
		zap.String("order_id", s.orderID),
		zap.Float64("total", receipt.Total),
	)
	s.timer = s.sched.AfterFunc(s.timing.Reset, s.reset)
}

// reset clears the cart and returns the state to none. The receipt of the
// finished order stays downloadable until the next checkout begins.
func (s *orderService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.cart.Clear()
	s.active = false
	s.status = ""
	s.customer = CustomerInfo{}
	s.payment = ""
	s.logger.Info("Order complete, cart cleared")
}

func (s *orderService) State() OrderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return OrderState{Status: s.status, OrderID: s.orderID}
}

func (s *orderService) Receipt(orderID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.receiptText == "" || orderID != s.orderID {
		return "", ErrReceiptNotFound
	}
	return s.receiptText, nil
}

// Stop cancels any pending transition; used on shutdown.
func (s *orderService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.active = false
	s.status = ""
}

// buildReceipt resolves component ids to names against the catalog while the
// cart is still populated. Caller holds the lock.
func (s *orderService) buildReceipt() domain.OrderReceipt {
	items := s.cart.Items()
	receipt := domain.OrderReceipt{
		OrderID:         s.orderID,
		CustomerName:    s.customer.Name,
		CustomerPhone:   s.customer.Phone,
		CustomerAddress: s.customer.Address,
		PaymentMethod:   s.payment,
		Total:           s.cart.Total(),
		Date:            time.Now(),
		Status:          s.status,
	}

	for _, item := range items {
		line := domain.ReceiptItem{
			Quantity: item.Quantity,
			Price:    item.TotalPrice,
		}
		product, err := s.catalog.ProductByID(item.ProductID)
		if err == nil {
			line.Name = product.Name
			for _, id := range item.RemovedComponents {
				if c, ok := product.Component(id); ok {
					line.RemovedComponents = append(line.RemovedComponents, c.Name)
				}
			}
			for _, id := range item.AddedComponents {
				if c, ok := product.Component(id); ok {
					line.AddedComponents = append(line.AddedComponents, c.Name)
				}
			}
		}
		receipt.Items = append(receipt.Items, line)
	}
	return receipt
}

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderID returns a 9-character uppercase base-36 identifier.
func newOrderID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}
	return string(b)
}
