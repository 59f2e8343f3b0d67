package order

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"grubdash/pkg/errs"
	"grubdash/pkg/idgen"
	"grubdash/pkg/logger"
	"grubdash/pkg/store"
	"grubdash/pkg/validate"
)

const (
	msgStatusInvalid = "Order must have a status of pending, preparing, out-for-delivery, delivered"
	msgDelivered     = "A delivered order cannot be changed"
)

// request is the state threaded through a pipeline.
type request struct {
	routeID string
	body    Payload
	found   Order
	order   Order
}

// Service runs the order pipelines.
type Service struct {
	repo store.Repository[Order]
	ids  idgen.Generator
	log  *logger.Logger

	// mu serializes mutating pipelines so lookup, validation and the write
	// observe the same record.
	mu sync.Mutex

	create  validate.Chain[request]
	update  validate.Chain[request]
	destroy validate.Chain[request]
}

// NewService creates an order service.
func NewService(repo store.Repository[Order], ids idgen.Generator, log *logger.Logger) *Service {
	s := &Service{repo: repo, ids: ids, log: log}
	s.create = validate.Chain[request]{
		hasDeliverTo,
		hasMobileNumber,
		hasDishes,
		hasQuantities,
		initialStatus,
	}
	s.update = validate.Chain[request]{
		s.lookup,
		notDelivered,
		hasStatus,
		movesForward,
		hasDishes,
		hasQuantities,
		hasDeliverTo,
		hasMobileNumber,
		idMatchesRoute,
	}
	s.destroy = validate.Chain[request]{s.lookup, isPending}
	return s
}

// List returns every order.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Get returns the order with the given id.
func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	req := request{routeID: id}
	if err := s.lookup(ctx, &req); err != nil {
		return Order{}, err
	}
	return req.found, nil
}

// Create validates body and stores it under a new id.
func (s *Service) Create(ctx context.Context, body Payload) (Order, error) {
	req := request{body: body}
	if err := s.create.Run(ctx, &req); err != nil {
		return Order{}, err
	}
	req.order.ID = s.ids.NewID()
	if err := s.repo.Create(ctx, req.order); err != nil {
		return Order{}, fmt.Errorf("create order: %w", err)
	}
	s.log.Info(ctx, "order created", "id", req.order.ID, "status", req.order.Status)
	return req.order, nil
}

// Update validates body and replaces the order stored under id.
func (s *Service) Update(ctx context.Context, id string, body Payload) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := request{routeID: id, body: body}
	if err := s.update.Run(ctx, &req); err != nil {
		return Order{}, err
	}
	req.order.ID = req.found.ID
	if err := s.repo.Update(ctx, req.order); err != nil {
		return Order{}, fmt.Errorf("update order %s: %w", id, err)
	}
	s.log.Info(ctx, "order updated", "id", id, "from", req.found.Status, "to", req.order.Status)
	return req.order, nil
}

// Delete removes the order stored under id if it is still pending.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := request{routeID: id}
	if err := s.destroy.Run(ctx, &req); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	s.log.Info(ctx, "order deleted", "id", id)
	return nil
}

func (s *Service) lookup(ctx context.Context, req *request) error {
	o, err := s.repo.Get(ctx, req.routeID)
	if errors.Is(err, store.ErrNotFound) {
		return errs.NotFound("Order does not exist: %s.", req.routeID)
	}
	if err != nil {
		return fmt.Errorf("get order %s: %w", req.routeID, err)
	}
	req.found = o
	return nil
}

func hasDeliverTo(_ context.Context, req *request) error {
	v, ok := validate.String(req.body.DeliverTo)
	if !ok {
		return errs.BadRequest("Order must include a deliverTo")
	}
	req.order.DeliverTo = v
	return nil
}

func hasMobileNumber(_ context.Context, req *request) error {
	v, ok := validate.String(req.body.MobileNumber)
	if !ok {
		return errs.BadRequest("Order must include a mobileNumber")
	}
	req.order.MobileNumber = v
	return nil
}

func hasDishes(_ context.Context, req *request) error {
	dishes, ok := req.body.Dishes.([]any)
	if !ok {
		return errs.BadRequest("Order must include a dish")
	}
	if len(dishes) == 0 {
		return errs.BadRequest("Order must include at least one dish")
	}
	return nil
}

// hasQuantities must run after hasDishes.
func hasQuantities(_ context.Context, req *request) error {
	dishes := req.body.Dishes.([]any)
	items := make([]Item, 0, len(dishes))
	for i, d := range dishes {
		fields, _ := d.(map[string]any)
		qty, ok := validate.PositiveInt(fields["quantity"])
		if !ok {
			return errs.BadRequest("Dish %d must have a quantity that is an integer greater than 0", i)
		}
		id, _ := fields["dishId"].(string)
		items = append(items, Item{DishID: id, Quantity: qty})
	}
	req.order.Dishes = items
	return nil
}

func initialStatus(_ context.Context, req *request) error {
	if req.body.Status == nil {
		req.order.Status = StatusPending
		return nil
	}
	st, ok := ParseStatus(req.body.Status)
	if !ok {
		return errs.BadRequest(msgStatusInvalid)
	}
	if st == StatusDelivered {
		return errs.BadRequest(msgDelivered)
	}
	req.order.Status = st
	return nil
}

func notDelivered(_ context.Context, req *request) error {
	if req.found.Status == StatusDelivered {
		return errs.BadRequest(msgDelivered)
	}
	return nil
}

func hasStatus(_ context.Context, req *request) error {
	st, ok := ParseStatus(req.body.Status)
	if !ok {
		return errs.BadRequest(msgStatusInvalid)
	}
	if st == StatusDelivered {
		return errs.BadRequest(msgDelivered)
	}
	req.order.Status = st
	return nil
}

func movesForward(_ context.Context, req *request) error {
	if !req.found.Status.CanMoveTo(req.order.Status) {
		return errs.BadRequest("Order status cannot move from %s back to %s", req.found.Status, req.order.Status)
	}
	return nil
}

func idMatchesRoute(_ context.Context, req *request) error {
	if id, conflict := validate.ConflictingID(req.body.ID, req.routeID); conflict {
		return errs.BadRequest("Order id does not match route id. Order: %s, Route: %s.", id, req.routeID)
	}
	return nil
}

func isPending(_ context.Context, req *request) error {
	if !req.found.Status.Deletable() {
		return errs.BadRequest("An order cannot be deleted unless it is pending.")
	}
	return nil
}
