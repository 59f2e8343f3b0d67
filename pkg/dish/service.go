package dish

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

// request is the state threaded through a pipeline.
type request struct {
	routeID string
	body    Payload
	found   Dish
	dish    Dish
}

// Service runs the dish pipelines.
type Service struct {
	repo store.Repository[Dish]
	ids  idgen.Generator
	log  *logger.Logger

	// mu serializes mutating pipelines so lookup, validation and replace
	// observe the same record.
	mu sync.Mutex

	create validate.Chain[request]
	update validate.Chain[request]
}

// NewService creates a dish service.
func NewService(repo store.Repository[Dish], ids idgen.Generator, log *logger.Logger) *Service {
	s := &Service{repo: repo, ids: ids, log: log}
	fields := validate.Chain[request]{hasName, hasDescription, hasPrice, hasImageURL}
	s.create = fields
	s.update = validate.Chain[request]{s.lookup}.Then(fields...).Then(idMatchesRoute)
	return s
}

// List returns every dish.
func (s *Service) List(ctx context.Context) ([]Dish, error) {
	dishes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

// Get returns the dish with the given id.
func (s *Service) Get(ctx context.Context, id string) (Dish, error) {
	req := request{routeID: id}
	if err := s.lookup(ctx, &req); err != nil {
		return Dish{}, err
	}
	return req.found, nil
}

// Create validates body and stores it under a new id.
func (s *Service) Create(ctx context.Context, body Payload) (Dish, error) {
	req := request{body: body}
	if err := s.create.Run(ctx, &req); err != nil {
		return Dish{}, err
	}
	req.dish.ID = s.ids.NewID()
	if err := s.repo.Create(ctx, req.dish); err != nil {
		return Dish{}, fmt.Errorf("create dish: %w", err)
	}
	s.log.Info(ctx, "dish created", "id", req.dish.ID)
	return req.dish, nil
}

// Update validates body and replaces the dish stored under id.
func (s *Service) Update(ctx context.Context, id string, body Payload) (Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := request{routeID: id, body: body}
	if err := s.update.Run(ctx, &req); err != nil {
		return Dish{}, err
	}
	req.dish.ID = req.found.ID
	if err := s.repo.Update(ctx, req.dish); err != nil {
		return Dish{}, fmt.Errorf("update dish %s: %w", id, err)
	}
	s.log.Info(ctx, "dish updated", "id", id)
	return req.dish, nil
}

func (s *Service) lookup(ctx context.Context, req *request) error {
	d, err := s.repo.Get(ctx, req.routeID)
	if errors.Is(err, store.ErrNotFound) {
		return errs.NotFound("Dish does not exist: %s.", req.routeID)
	}
	if err != nil {
		return fmt.Errorf("get dish %s: %w", req.routeID, err)
	}
	req.found = d
	return nil
}

func hasName(_ context.Context, req *request) error {
	name, ok := validate.String(req.body.Name)
	if !ok {
		return errs.BadRequest("Dish must include a name")
	}
	req.dish.Name = name
	return nil
}

func hasDescription(_ context.Context, req *request) error {
	desc, ok := validate.String(req.body.Description)
	if !ok {
		return errs.BadRequest("Dish must include a description")
	}
	req.dish.Description = desc
	return nil
}

func hasPrice(_ context.Context, req *request) error {
	price, ok := validate.Number(req.body.Price)
	if !ok {
		return errs.BadRequest("Dish must include a price")
	}
	if price <= 0 {
		return errs.BadRequest("Dish must have a price that is an integer greater than 0")
	}
	req.dish.Price = price
	return nil
}

func hasImageURL(_ context.Context, req *request) error {
	url, ok := validate.String(req.body.ImageURL)
	if !ok {
		return errs.BadRequest("Dish must include a image_url")
	}
	req.dish.ImageURL = url
	return nil
}

func idMatchesRoute(_ context.Context, req *request) error {
	if id, conflict := validate.ConflictingID(req.body.ID, req.routeID); conflict {
		return errs.BadRequest("Dish id does not match route id. Dish: %s, Route: %s", id, req.routeID)
	}
	return nil
}
