package records

import (
	"context"
	"errors"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, resource string) ([]Record, error) {
	if !Known(resource) {
		return nil, ErrUnknownResource
	}
	return s.repo.List(ctx, resource)
}

func (s *Service) Get(ctx context.Context, resource string, id int64) (Record, error) {
	if !Known(resource) {
		return nil, ErrUnknownResource
	}
	return s.repo.Get(ctx, resource, id)
}

func (s *Service) Create(ctx context.Context, resource string, in Record) (Record, error) {
	if !Known(resource) {
		return nil, ErrUnknownResource
	}
	rec := clone(in)
	if err := s.checkReferences(ctx, resource, rec); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, resource, rec)
}

// Update reemplaza el registro completo; el id de la URL manda sobre el del body.
func (s *Service) Update(ctx context.Context, resource string, id int64, in Record) (Record, error) {
	if !Known(resource) {
		return nil, ErrUnknownResource
	}
	if _, err := s.repo.Get(ctx, resource, id); err != nil {
		return nil, err
	}
	rec := clone(in)
	if err := s.checkReferences(ctx, resource, rec); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, resource, id, rec)
}

// Delete rechaza borrar un registro que otro recurso referencia.
func (s *Service) Delete(ctx context.Context, resource string, id int64) error {
	if !Known(resource) {
		return ErrUnknownResource
	}
	if _, err := s.repo.Get(ctx, resource, id); err != nil {
		return err
	}
	for child, fields := range referencedBy(resource) {
		recs, err := s.repo.List(ctx, child)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			for _, f := range fields {
				if fk, ok := intValue(rec[f]); ok && fk == id {
					return fmt.Errorf("%w: %s %d is used by %s", ErrConflict, resource, id, child)
				}
			}
		}
	}
	return s.repo.Delete(ctx, resource, id)
}

func (s *Service) checkReferences(ctx context.Context, resource string, rec Record) error {
	for _, fk := range schema[resource] {
		raw, present := rec[fk.Field]
		if !present {
			continue
		}
		id, ok := intValue(raw)
		if !ok {
			return fmt.Errorf("%w: %s must be a positive integer", ErrInvalidInput, fk.Field)
		}
		if _, err := s.repo.Get(ctx, fk.Resource, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: %s %d does not exist", ErrInvalidInput, fk.Resource, id)
			}
			return err
		}
	}
	return nil
}
