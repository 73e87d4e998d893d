package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mghkill/burguer-saas/internal/config"
	"github.com/mghkill/burguer-saas/internal/domain"
	"github.com/mghkill/burguer-saas/internal/service"
	"github.com/mghkill/burguer-saas/internal/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// manualScheduler queues the simulation's transitions so tests step through
// them without real delays.
type manualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

type manualTimer struct{}

func (manualTimer) Stop() bool { return true }

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) service.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, fn)
	return manualTimer{}
}

func (s *manualScheduler) fire(t *testing.T) {
	t.Helper()
	s.mu.Lock()
	require.NotEmpty(t, s.pending, "no pending transition")
	fn := s.pending[0]
	s.pending = s.pending[1:]
	s.mu.Unlock()
	fn()
}

type testClient struct {
	t      *testing.T
	server *httptest.Server
}

func newTestClient(t *testing.T) (*testClient, *manualScheduler) {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", Env: "test"},
		Admin:  config.AdminConfig{Username: "admin", Password: "admin123"},
	}
	sched := &manualScheduler{}
	srv := NewServer(cfg, zap.NewNop(), sched)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return &testClient{t: t, server: ts}, sched
}

func (c *testClient) do(method, path string, body interface{}) (*http.Response, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, raw
}

func (c *testClient) login() {
	c.t.Helper()
	resp, _ := c.do(http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
}

func (c *testClient) status() transport.OrderStatusResponse {
	c.t.Helper()
	resp, raw := c.do(http.MethodGet, "/api/orders/current", nil)
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
	var out transport.OrderStatusResponse
	require.NoError(c.t, json.Unmarshal(raw, &out))
	return out
}

func (c *testClient) cart() transport.CartResponse {
	c.t.Helper()
	resp, raw := c.do(http.MethodGet, "/api/cart", nil)
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
	var out transport.CartResponse
	require.NoError(c.t, json.Unmarshal(raw, &out))
	return out
}

func TestAdminGateRequiresLogin(t *testing.T) {
	client, _ := newTestClient(t)

	resp, _ := client.do(http.MethodPost, "/api/admin/categories", map[string]string{"name": "Bebidas"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = client.do(http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	client.login()
	resp, _ = client.do(http.MethodPost, "/api/admin/categories", map[string]string{"name": "Bebidas"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

// Full customer flow: a fresh category and product, two units in the cart,
// checkout, the scripted status chain, the receipt, and the cleared cart.
func TestEndToEndOrderFlow(t *testing.T) {
	client, sched := newTestClient(t)
	client.login()

	resp, raw := client.do(http.MethodPost, "/api/admin/categories", map[string]string{"name": "Bebidas"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var category domain.Category
	require.NoError(t, json.Unmarshal(raw, &category))

	resp, raw = client.do(http.MethodPost, "/api/admin/products", map[string]interface{}{
		"name":        "Suco",
		"price":       6.00,
		"category_id": category.ID.String(),
		"type":        "drink",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product domain.Product
	require.NoError(t, json.Unmarshal(raw, &product))

	resp, _ = client.do(http.MethodPost, "/api/cart/items", map[string]interface{}{
		"product_id": product.ID.String(),
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.InDelta(t, 12.00, client.cart().Total, 1e-9)

	// Whitespace-only fields reject the checkout without touching anything.
	resp, _ = client.do(http.MethodPost, "/api/orders", map[string]string{
		"customer_name":    "   ",
		"customer_phone":   "11 98888-7777",
		"customer_address": "Av. Paulista, 1000",
		"payment_method":   "credit",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "none", client.status().Status)
	assert.Len(t, client.cart().Items, 1)

	resp, _ = client.do(http.MethodPost, "/api/orders", map[string]string{
		"customer_name":    "João Souza",
		"customer_phone":   "11 98888-7777",
		"customer_address": "Av. Paulista, 1000",
		"payment_method":   "credit",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "pending", client.status().Status)

	// A second submission is refused while the chain is running.
	resp, _ = client.do(http.MethodPost, "/api/orders", map[string]string{
		"customer_name":    "João Souza",
		"customer_phone":   "11 98888-7777",
		"customer_address": "Av. Paulista, 1000",
		"payment_method":   "credit",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	sched.fire(t)
	assert.Equal(t, "accepted", client.status().Status)
	sched.fire(t)
	assert.Equal(t, "preparing", client.status().Status)
	sched.fire(t)

	state := client.status()
	require.Equal(t, "ready", state.Status)
	require.NotEmpty(t, state.OrderID)
	require.Equal(t, fmt.Sprintf("/api/orders/%s/receipt", state.OrderID), state.ReceiptURL)

	resp, raw = client.do(http.MethodGet, state.ReceiptURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	receipt := string(raw)
	assert.Contains(t, receipt, "Suco x2")
	assert.Contains(t, receipt, "R$ 12.00")
	assert.Contains(t, receipt, "Nome: João Souza")
	assert.Contains(t, receipt, "Forma de Pagamento: CREDIT")
	assert.Equal(t,
		fmt.Sprintf("attachment; filename=pedido-%s.txt", state.OrderID),
		resp.Header.Get("Content-Disposition"),
	)

	sched.fire(t)
	assert.Equal(t, "none", client.status().Status)
	assert.Empty(t, client.cart().Items)
}

// Customization pricing through the full stack: Burger Clássico (25.90) with
// Bacon (4.00) at quantity 1, then rescaled to quantity 3.
func TestEndToEndCustomizationPricing(t *testing.T) {
	client, _ := newTestClient(t)

	resp, raw := client.do(http.MethodGet, "/api/catalog/products?q=burger", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(raw, &products))
	require.Len(t, products, 1)
	burger := products[0]

	var bacon domain.ProductComponent
	for _, c := range burger.Components {
		if c.Name == "Bacon" {
			bacon = c
		}
	}
	require.NotEmpty(t, bacon.ID)

	resp, raw = client.do(http.MethodPost, "/api/cart/items", map[string]interface{}{
		"product_id":       burger.ID.String(),
		"quantity":         1,
		"added_components": []string{bacon.ID.String()},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item domain.CartItem
	require.NoError(t, json.Unmarshal(raw, &item))
	assert.InDelta(t, 29.90, item.TotalPrice, 1e-9)

	resp, _ = client.do(http.MethodPatch, "/api/cart/items/"+item.ID.String(), map[string]int{"quantity": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cart := client.cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.InDelta(t, 89.70, cart.Items[0].TotalPrice, 1e-6)
	assert.InDelta(t, 89.70, cart.Total, 1e-6)
}

func TestLandingAndHealthSurfaces(t *testing.T) {
	client, _ := newTestClient(t)

	resp, raw := client.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "BURGERAÇAÍ")

	resp, raw = client.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))
}
