package order_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"StoreAPI/internal/order"
	"StoreAPI/internal/store"
	"StoreAPI/pkg/kit"
)

func newTestServer(t *testing.T, st order.Store) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.NotFound(kit.NotFound)
	s := &order.Server{Store: st, Log: zap.NewNop()}
	s.Routes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func TestOrders_CreateAndGet(t *testing.T) {
	ts := newTestServer(t, store.NewMemory(store.DefaultProducts()...))

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/orders", `{"id":1,"productId":2,"quantity":3}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	assert.Equal(t, "/api/orders/1", resp.Header.Get("Location"))
	assert.JSONEq(t, `{"id":1,"productId":2,"quantity":3}`, body)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/orders/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":1,"productId":2,"quantity":3}`, body)
}

func TestOrders_CreateMissingProduct(t *testing.T) {
	ts := newTestServer(t, store.NewMemory(store.DefaultProducts()...))

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/orders", `{"id":2,"productId":99,"quantity":1}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var er kit.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &er))
	assert.Equal(t, "product 99 does not exist", er.Error)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/orders", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, body)
}

func TestOrders_CreateConflict(t *testing.T) {
	ts := newTestServer(t, store.NewMemory(store.DefaultProducts()...))

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/orders", `{"id":1,"productId":1,"quantity":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/orders", `{"id":1,"productId":3,"quantity":5}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "order with id 1 already exists")

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/orders", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":1,"productId":1,"quantity":1}]`, body)
}

func TestOrders_ListInInsertionOrder(t *testing.T) {
	ts := newTestServer(t, store.NewMemory(store.DefaultProducts()...))

	for _, b := range []string{
		`{"id":9,"productId":1,"quantity":1}`,
		`{"id":3,"productId":2,"quantity":2}`,
		`{"id":5,"productId":3,"quantity":3}`,
	} {
		resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/orders", b)
		require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	}

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/orders", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []order.Order
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Len(t, got, 3)
	assert.Equal(t, []int{9, 3, 5}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestOrders_GetMisses(t *testing.T) {
	ts := newTestServer(t, store.NewMemory(store.DefaultProducts()...))

	for _, path := range []string{"/api/orders/1", "/api/orders/one", "/api/orders/1.5", "/api/orders/99999999999999999999"} {
		resp, _ := doJSON(t, http.MethodGet, ts.URL+path, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestOrders_NoUpdateOrDelete(t *testing.T) {
	st := store.NewMemory(store.DefaultProducts()...)
	ts := newTestServer(t, st)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/orders", `{"id":1,"productId":1,"quantity":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/orders/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPut, ts.URL+"/api/orders/1", `{"quantity":2}`)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	got, err := st.GetOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
}

func TestOrders_BadJSON(t *testing.T) {
	ts := newTestServer(t, store.NewMemory(store.DefaultProducts()...))

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/orders", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

type brokenStore struct {
	order.Store
}

func (brokenStore) CreateOrder(context.Context, order.Order) (order.Order, error) {
	return order.Order{}, errors.New("disk on fire")
}

func TestOrders_StoreFailureIs500(t *testing.T) {
	ts := newTestServer(t, brokenStore{})

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/orders", `{"id":1,"productId":1,"quantity":1}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
