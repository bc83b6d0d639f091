package service

import (
	"context"
	"errors"
	"fmt"

	"soapdesign-api/internal/apperr"
	"soapdesign-api/internal/repository"
)

type Portfolio struct {
	projects *repository.ProjectRepository
}

func NewPortfolio(store *repository.Store) *Portfolio {
	return &Portfolio{projects: store.Projects}
}

func (s *Portfolio) Get(ctx context.Context, id uint) (*repository.ProjectDTO, error) {
	project, err := s.projects.FindWithRelationsByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, apperr.NotFound(fmt.Sprintf("Project with id:%d was not found", id))
	case err != nil:
		return nil, apperr.PersistenceFailure(err)
	}

	dto := repository.Flatten(*project)
	return &dto, nil
}

func (s *Portfolio) List(ctx context.Context) ([]repository.ProjectDTO, error) {
	list, err := s.projects.FindAllWithRelations(ctx, nil)
	if err != nil {
		return nil, apperr.PersistenceFailure(err)
	}
	return list, nil
}
