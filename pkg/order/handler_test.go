package order_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"grubdash/pkg/httpx"
	"grubdash/pkg/idgen"
	"grubdash/pkg/logger"
	"grubdash/pkg/order"
	"grubdash/pkg/store/memory"
)

func seeded() []order.Order {
	item := []order.Item{{DishID: "d1", Quantity: 1}}
	return []order.Order{
		{ID: "pending", DeliverTo: "1 Main St", MobileNumber: "555-0100", Status: order.StatusPending, Dishes: item},
		{ID: "preparing", DeliverTo: "2 Main St", MobileNumber: "555-0101", Status: order.StatusPreparing, Dishes: item},
		{ID: "out", DeliverTo: "3 Main St", MobileNumber: "555-0102", Status: order.StatusOutForDelivery, Dishes: item},
		{ID: "delivered", DeliverTo: "4 Main St", MobileNumber: "555-0103", Status: order.StatusDelivered, Dishes: item},
	}
}

func newServer(t *testing.T) http.Handler {
	t.Helper()
	n := 0
	ids := idgen.Func(func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	})
	log := logger.New(io.Discard, logger.LevelDebug, "test", nil)
	svc := order.NewService(memory.New(seeded()...), ids, log)
	return httpx.NewRouter(log, noop.NewTracerProvider().Tracer("test"), order.NewHandler(svc, log))
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, buf))
	return rec
}

func data(fields map[string]any) map[string]any {
	return map[string]any{"data": fields}
}

func validOrder() map[string]any {
	return map[string]any{
		"deliverTo":    "123 Main",
		"mobileNumber": "555-0100",
		"dishes":       []any{map[string]any{"dishId": "1", "quantity": 2}},
	}
}

func withStatus(status string) map[string]any {
	o := validOrder()
	o["status"] = status
	return o
}

func decodeOrder(t *testing.T, rec *httptest.ResponseRecorder) order.Order {
	t.Helper()
	var out struct{ Data order.Order }
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Data
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []order.Order {
	t.Helper()
	var out struct{ Data []order.Order }
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var out httpx.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Error
}

func TestList(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/orders", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, seeded(), decodeList(t, rec))
}

func TestCreateThenRead(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodPost, "/orders", data(validOrder()))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeOrder(t, rec)
	assert.Equal(t, order.Order{
		ID:           "new-1",
		DeliverTo:    "123 Main",
		MobileNumber: "555-0100",
		Status:       order.StatusPending,
		Dishes:       []order.Item{{DishID: "1", Quantity: 2}},
	}, created)

	rec = do(t, srv, http.MethodGet, "/orders/new-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeOrder(t, rec))

	list := decodeList(t, do(t, srv, http.MethodGet, "/orders", nil))
	require.Len(t, list, 5)
	assert.Equal(t, created, list[4])
}

func TestCreateKeepsKnownStatus(t *testing.T) {
	rec := do(t, newServer(t), http.MethodPost, "/orders", data(withStatus("preparing")))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, order.StatusPreparing, decodeOrder(t, rec).Status)
}

func TestCreateAcceptsLargeQuantity(t *testing.T) {
	body := validOrder()
	body["dishes"] = []any{map[string]any{"dishId": "1", "quantity": 3000000000}}
	rec := do(t, newServer(t), http.MethodPost, "/orders", data(body))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, []order.Item{{DishID: "1", Quantity: 3000000000}}, decodeOrder(t, rec).Dishes)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		want   string
	}{
		{"missing deliverTo", func(o map[string]any) { delete(o, "deliverTo") }, "Order must include a deliverTo"},
		{"empty deliverTo", func(o map[string]any) { o["deliverTo"] = "" }, "Order must include a deliverTo"},
		{"missing mobileNumber", func(o map[string]any) { delete(o, "mobileNumber") }, "Order must include a mobileNumber"},
		{"empty mobileNumber", func(o map[string]any) { o["mobileNumber"] = "" }, "Order must include a mobileNumber"},
		{"missing dishes", func(o map[string]any) { delete(o, "dishes") }, "Order must include a dish"},
		{"dishes not an array", func(o map[string]any) { o["dishes"] = "pasta" }, "Order must include a dish"},
		{"empty dishes", func(o map[string]any) { o["dishes"] = []any{} }, "Order must include at least one dish"},
		{
			"missing quantity",
			func(o map[string]any) { o["dishes"] = []any{map[string]any{"dishId": "1"}} },
			"Dish 0 must have a quantity that is an integer greater than 0",
		},
		{
			"zero quantity",
			func(o map[string]any) {
				o["dishes"] = []any{
					map[string]any{"dishId": "1", "quantity": 1},
					map[string]any{"dishId": "2", "quantity": 0},
				}
			},
			"Dish 1 must have a quantity that is an integer greater than 0",
		},
		{
			"string quantity",
			func(o map[string]any) { o["dishes"] = []any{map[string]any{"dishId": "1", "quantity": "2"}} },
			"Dish 0 must have a quantity that is an integer greater than 0",
		},
		{
			"fractional quantity",
			func(o map[string]any) { o["dishes"] = []any{map[string]any{"dishId": "1", "quantity": 1.5}} },
			"Dish 0 must have a quantity that is an integer greater than 0",
		},
		{
			"first offending index wins",
			func(o map[string]any) {
				o["dishes"] = []any{
					map[string]any{"quantity": 1},
					map[string]any{"quantity": -1},
					map[string]any{"quantity": 0},
				}
			},
			"Dish 1 must have a quantity that is an integer greater than 0",
		},
		{
			"dish not an object",
			func(o map[string]any) { o["dishes"] = []any{"pasta"} },
			"Dish 0 must have a quantity that is an integer greater than 0",
		},
		{
			"unknown status",
			func(o map[string]any) { o["status"] = "out-for=delivery" },
			"Order must have a status of pending, preparing, out-for-delivery, delivered",
		},
		{
			"delivered status",
			func(o map[string]any) { o["status"] = "delivered" },
			"A delivered order cannot be changed",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newServer(t)
			body := validOrder()
			tc.mutate(body)

			rec := do(t, srv, http.MethodPost, "/orders", data(body))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, decodeError(t, rec))
			assert.Len(t, decodeList(t, do(t, srv, http.MethodGet, "/orders", nil)), 4)
		})
	}
}

func TestReadUnknown(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/orders/nope", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order does not exist: nope.", decodeError(t, rec))
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		status string
		bodyID any
	}{
		{"pending stays pending", "pending", "pending", nil},
		{"pending to preparing", "pending", "preparing", "pending"},
		{"preparing to out-for-delivery", "preparing", "out-for-delivery", ""},
		{"out-for-delivery stays", "out", "out-for-delivery", 7.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newServer(t)
			body := withStatus(tc.status)
			if tc.bodyID != nil {
				body["id"] = tc.bodyID
			}

			rec := do(t, srv, http.MethodPut, "/orders/"+tc.id, data(body))

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			updated := decodeOrder(t, rec)
			assert.Equal(t, tc.id, updated.ID)
			assert.Equal(t, order.Status(tc.status), updated.Status)
			assert.Equal(t, "123 Main", updated.DeliverTo)

			rec = do(t, srv, http.MethodGet, "/orders/"+tc.id, nil)
			assert.Equal(t, updated, decodeOrder(t, rec))
		})
	}
}

func TestUpdateKeepsPosition(t *testing.T) {
	srv := newServer(t)
	rec := do(t, srv, http.MethodPut, "/orders/preparing", data(withStatus("preparing")))
	require.Equal(t, http.StatusOK, rec.Code)

	list := decodeList(t, do(t, srv, http.MethodGet, "/orders", nil))
	require.Len(t, list, 4)
	assert.Equal(t, "preparing", list[1].ID)
	assert.Equal(t, "123 Main", list[1].DeliverTo)
}

func TestUpdateRejections(t *testing.T) {
	statusMsg := "Order must have a status of pending, preparing, out-for-delivery, delivered"
	tests := []struct {
		name string
		id   string
		body map[string]any
		code int
		want string
	}{
		{"unknown order", "nope", withStatus("pending"), http.StatusNotFound, "Order does not exist: nope."},
		{"stored order delivered", "delivered", withStatus("pending"), http.StatusBadRequest, "A delivered order cannot be changed"},
		{"stored delivered beats invalid body", "delivered", map[string]any{}, http.StatusBadRequest, "A delivered order cannot be changed"},
		{"body delivered", "out", withStatus("delivered"), http.StatusBadRequest, "A delivered order cannot be changed"},
		{"missing status", "pending", validOrder(), http.StatusBadRequest, statusMsg},
		{"empty status", "pending", withStatus(""), http.StatusBadRequest, statusMsg},
		{"misspelled status", "pending", withStatus("out-for=delivery"), http.StatusBadRequest, statusMsg},
		{"backwards", "out", withStatus("pending"), http.StatusBadRequest, "Order status cannot move from out-for-delivery back to pending"},
		{
			"id mismatch", "pending",
			func() map[string]any { o := withStatus("pending"); o["id"] = "other"; return o }(),
			http.StatusBadRequest, "Order id does not match route id. Order: other, Route: pending.",
		},
		{
			"no dishes", "pending",
			func() map[string]any { o := withStatus("pending"); o["dishes"] = []any{}; return o }(),
			http.StatusBadRequest, "Order must include at least one dish",
		},
		{
			"bad quantity", "pending",
			func() map[string]any {
				o := withStatus("pending")
				o["dishes"] = []any{map[string]any{"dishId": "1", "quantity": 0}}
				return o
			}(),
			http.StatusBadRequest, "Dish 0 must have a quantity that is an integer greater than 0",
		},
		{
			"no deliverTo", "pending",
			func() map[string]any { o := withStatus("pending"); delete(o, "deliverTo"); return o }(),
			http.StatusBadRequest, "Order must include a deliverTo",
		},
		{
			"no mobileNumber", "pending",
			func() map[string]any { o := withStatus("pending"); o["mobileNumber"] = ""; return o }(),
			http.StatusBadRequest, "Order must include a mobileNumber",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newServer(t)

			rec := do(t, srv, http.MethodPut, "/orders/"+tc.id, data(tc.body))

			require.Equal(t, tc.code, rec.Code, rec.Body.String())
			assert.Equal(t, tc.want, decodeError(t, rec))
			assert.Equal(t, seeded(), decodeList(t, do(t, srv, http.MethodGet, "/orders", nil)))
		})
	}
}

func TestDeletePending(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodDelete, "/orders/pending", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/orders/pending", nil).Code)
	for _, o := range decodeList(t, do(t, srv, http.MethodGet, "/orders", nil)) {
		assert.NotEqual(t, "pending", o.ID)
	}
}

func TestDeleteRejected(t *testing.T) {
	for _, id := range []string{"preparing", "out", "delivered"} {
		t.Run(id, func(t *testing.T) {
			srv := newServer(t)

			rec := do(t, srv, http.MethodDelete, "/orders/"+id, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "An order cannot be deleted unless it is pending.", decodeError(t, rec))
			assert.Equal(t, http.StatusOK, do(t, srv, http.MethodGet, "/orders/"+id, nil).Code)
		})
	}
}

func TestDeleteUnknown(t *testing.T) {
	rec := do(t, newServer(t), http.MethodDelete, "/orders/nope", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatedOrderCanBeDeleted(t *testing.T) {
	srv := newServer(t)
	rec := do(t, srv, http.MethodPost, "/orders", data(validOrder()))
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeOrder(t, rec).ID

	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodDelete, "/orders/"+id, nil).Code)
	assert.Len(t, decodeList(t, do(t, srv, http.MethodGet, "/orders", nil)), 4)
}
