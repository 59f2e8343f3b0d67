package order

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	"grubdash/pkg/httpx"
	"grubdash/pkg/logger"
	"grubdash/pkg/otel"
)

// Handler exposes the order service over HTTP.
type Handler struct {
	svc *Service
	log *logger.Logger
}

// NewHandler creates an order handler.
func NewHandler(svc *Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the order routes.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/orders", h.list).Methods(http.MethodGet)
	r.HandleFunc("/orders", h.create).Methods(http.MethodPost)
	r.HandleFunc("/orders/{orderId}", h.read).Methods(http.MethodGet)
	r.HandleFunc("/orders/{orderId}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/orders/{orderId}", h.delete).Methods(http.MethodDelete)
}

// list lists orders.
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {object} httpx.DataResponse{data=[]order.Order}
// @Router /orders [get]
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "order.list")
	defer span.End()

	orders, err := h.svc.List(ctx)
	if err != nil {
		httpx.Fail(ctx, h.log, w, "list orders", err)
		return
	}
	httpx.WriteData(w, http.StatusOK, orders)
}

// create creates a new order.
// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body httpx.DataRequest{data=order.Payload} true "Order"
// @Success 201 {object} httpx.DataResponse{data=order.Order}
// @Failure 400 {object} httpx.ErrorResponse
// @Router /orders [post]
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "order.create")
	defer span.End()

	var body Payload
	if err := httpx.DecodeData(r, &body); err != nil {
		httpx.Fail(ctx, h.log, w, "create order", err)
		return
	}
	o, err := h.svc.Create(ctx, body)
	if err != nil {
		httpx.Fail(ctx, h.log, w, "create order", err)
		return
	}
	span.SetAttributes(attribute.String("order.id", o.ID))
	httpx.WriteData(w, http.StatusCreated, o)
}

// read retrieves an order by ID.
// @Summary Get order
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} httpx.DataResponse{data=order.Order}
// @Failure 404 {object} httpx.ErrorResponse
// @Router /orders/{orderId} [get]
func (h *Handler) read(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["orderId"]
	ctx, span := otel.AddSpan(r.Context(), "order.read", attribute.String("order.id", id))
	defer span.End()

	o, err := h.svc.Get(ctx, id)
	if err != nil {
		httpx.Fail(ctx, h.log, w, "read order", err)
		return
	}
	httpx.WriteData(w, http.StatusOK, o)
}

// update replaces an existing order.
// @Summary Update order
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param order body httpx.DataRequest{data=order.Payload} true "Order"
// @Success 200 {object} httpx.DataResponse{data=order.Order}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /orders/{orderId} [put]
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["orderId"]
	ctx, span := otel.AddSpan(r.Context(), "order.update", attribute.String("order.id", id))
	defer span.End()

	var body Payload
	if err := httpx.DecodeData(r, &body); err != nil {
		httpx.Fail(ctx, h.log, w, "update order", err)
		return
	}
	o, err := h.svc.Update(ctx, id, body)
	if err != nil {
		httpx.Fail(ctx, h.log, w, "update order", err)
		return
	}
	httpx.WriteData(w, http.StatusOK, o)
}

// delete removes a pending order.
// @Summary Delete order
// @Tags orders
// @Param orderId path string true "Order ID"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /orders/{orderId} [delete]
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["orderId"]
	ctx, span := otel.AddSpan(r.Context(), "order.delete", attribute.String("order.id", id))
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		httpx.Fail(ctx, h.log, w, "delete order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
