package repository

import (
	"context"

	"gorm.io/gorm"

	"soapdesign-api/internal/models"
)

// Store: набор репозиториев поверх одного соединения или одной транзакции.
type Store struct {
	db *gorm.DB

	Users         *Repository[models.User]
	ServiceTypes  *Repository[models.ServiceType]
	ClientTypes   *Repository[models.ClientType]
	BudgetTypes   *Repository[models.BudgetType]
	DeadlineTypes *Repository[models.DeadlineType]
	Applications  *Repository[models.Application]
	Assignments   *Repository[models.Assignment]
	Projects      *ProjectRepository
	Images        *Repository[models.Image]
	Tags          *Repository[models.Tag]
	ProjectTags   *Repository[models.ProjectTag]
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Users:         New[models.User](db),
		ServiceTypes:  New[models.ServiceType](db),
		ClientTypes:   New[models.ClientType](db),
		BudgetTypes:   New[models.BudgetType](db),
		DeadlineTypes: New[models.DeadlineType](db),
		Applications:  New[models.Application](db),
		Assignments:   New[models.Assignment](db),
		Projects:      NewProjectRepository(db),
		Images:        New[models.Image](db),
		Tags:          New[models.Tag](db),
		ProjectTags:   New[models.ProjectTag](db),
	}
}

// Transaction выполняет fn в одной транзакции: commit если fn вернула nil, иначе rollback.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
