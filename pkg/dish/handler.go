package dish

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	"grubdash/pkg/httpx"
	"grubdash/pkg/logger"
	"grubdash/pkg/otel"
)

// Handler exposes the dish service over HTTP.
type Handler struct {
	svc *Service
	log *logger.Logger
}

// NewHandler creates a dish handler.
func NewHandler(svc *Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the dish routes. Dishes cannot be deleted, so DELETE on a
// dish answers 405.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/dishes", h.list).Methods(http.MethodGet)
	r.HandleFunc("/dishes", h.create).Methods(http.MethodPost)
	r.HandleFunc("/dishes/{dishId}", h.read).Methods(http.MethodGet)
	r.HandleFunc("/dishes/{dishId}", h.update).Methods(http.MethodPut)
}

// list lists dishes.
// @Summary List dishes
// @Tags dishes
// @Produce json
// @Success 200 {object} httpx.DataResponse{data=[]dish.Dish}
// @Router /dishes [get]
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "dish.list")
	defer span.End()

	dishes, err := h.svc.List(ctx)
	if err != nil {
		httpx.Fail(ctx, h.log, w, "list dishes", err)
		return
	}
	httpx.WriteData(w, http.StatusOK, dishes)
}

// create creates a new dish.
// @Summary Create dish
// @Tags dishes
// @Accept json
// @Produce json
// @Param dish body httpx.DataRequest{data=dish.Payload} true "Dish"
// @Success 201 {object} httpx.DataResponse{data=dish.Dish}
// @Failure 400 {object} httpx.ErrorResponse
// @Router /dishes [post]
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "dish.create")
	defer span.End()

	var body Payload
	if err := httpx.DecodeData(r, &body); err != nil {
		httpx.Fail(ctx, h.log, w, "create dish", err)
		return
	}
	d, err := h.svc.Create(ctx, body)
	if err != nil {
		httpx.Fail(ctx, h.log, w, "create dish", err)
		return
	}
	span.SetAttributes(attribute.String("dish.id", d.ID))
	httpx.WriteData(w, http.StatusCreated, d)
}

// read retrieves a dish by ID.
// @Summary Get dish
// @Tags dishes
// @Produce json
// @Param dishId path string true "Dish ID"
// @Success 200 {object} httpx.DataResponse{data=dish.Dish}
// @Failure 404 {object} httpx.ErrorResponse
// @Router /dishes/{dishId} [get]
func (h *Handler) read(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["dishId"]
	ctx, span := otel.AddSpan(r.Context(), "dish.read", attribute.String("dish.id", id))
	defer span.End()

	d, err := h.svc.Get(ctx, id)
	if err != nil {
		httpx.Fail(ctx, h.log, w, "read dish", err)
		return
	}
	httpx.WriteData(w, http.StatusOK, d)
}

// update replaces an existing dish.
// @Summary Update dish
// @Tags dishes
// @Accept json
// @Produce json
// @Param dishId path string true "Dish ID"
// @Param dish body httpx.DataRequest{data=dish.Payload} true "Dish"
// @Success 200 {object} httpx.DataResponse{data=dish.Dish}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /dishes/{dishId} [put]
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["dishId"]
	ctx, span := otel.AddSpan(r.Context(), "dish.update", attribute.String("dish.id", id))
	defer span.End()

	var body Payload
	if err := httpx.DecodeData(r, &body); err != nil {
		httpx.Fail(ctx, h.log, w, "update dish", err)
		return
	}
	d, err := h.svc.Update(ctx, id, body)
	if err != nil {
		httpx.Fail(ctx, h.log, w, "update dish", err)
		return
	}
	httpx.WriteData(w, http.StatusOK, d)
}
