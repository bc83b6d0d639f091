package service

import (
	"context"
	"errors"

	"soapdesign-api/internal/apperr"
	"soapdesign-api/internal/models"
	"soapdesign-api/internal/repository"
	"soapdesign-api/internal/utils"
)

// SubmitRequest: данные формы заявки с сайта.
type SubmitRequest struct {
	ServiceType  string
	ClientType   string
	BudgetType   string
	DeadlineType string
	Name         string
	Phone        string
	Email        string
	Comment      *string
}

type Applications struct {
	store *repository.Store
}

func NewApplications(store *repository.Store) *Applications {
	return &Applications{store: store}
}

// Submit находит или создаёт пользователя по телефону и сохраняет заявку.
// Всё выполняется в одной транзакции: при любой ошибке новый пользователь тоже откатывается.
func (s *Applications) Submit(ctx context.Context, req SubmitRequest) (*models.Application, error) {
	phone := utils.StripPhoneNumber(req.Phone)

	var app *models.Application
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		user, err := findOrCreateUser(ctx, tx, req, phone)
		if err != nil {
			return err
		}

		serviceType, err := resolve(ctx, tx.ServiceTypes, "service type", req.ServiceType)
		if err != nil {
			return err
		}
		clientType, err := resolve(ctx, tx.ClientTypes, "client type", req.ClientType)
		if err != nil {
			return err
		}
		budgetType, err := resolve(ctx, tx.BudgetTypes, "budget type", req.BudgetType)
		if err != nil {
			return err
		}
		deadlineType, err := resolve(ctx, tx.DeadlineTypes, "deadline type", req.DeadlineType)
		if err != nil {
			return err
		}

		app = &models.Application{
			UserID:         user.ID,
			ServiceTypeID:  serviceType.ID,
			ClientTypeID:   clientType.ID,
			BudgetTypeID:   budgetType.ID,
			DeadlineTypeID: deadlineType.ID,
			ClientName:     req.Name,
			ClientEmail:    req.Email,
			ClientPhone:    phone,
			ClientComment:  req.Comment,
			StatusLabel:    models.StatusWorkerNotAssigned,
		}
		if err := tx.Applications.Add(ctx, app); err != nil {
			return apperr.PersistenceFailure(err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	return app, nil
}

func (s *Applications) List(ctx context.Context) ([]models.Application, error) {
	apps, err := s.store.Applications.FindAll(ctx, nil)
	if err != nil {
		return nil, apperr.PersistenceFailure(err)
	}
	return apps, nil
}

func findOrCreateUser(ctx context.Context, tx *repository.Store, req SubmitRequest, phone string) (*models.User, error) {
	user, err := tx.Users.FindOne(ctx, repository.Filter{"phone": phone})
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.PersistenceFailure(err)
	}

	if !utils.VerifyEmail(req.Email) {
		return nil, apperr.InvalidEmailFormat(req.Email)
	}

	email := req.Email
	user = &models.User{
		Name:     req.Name,
		Phone:    phone,
		Email:    &email,
		UserType: models.UserTypeClient,
		IsActive: true,
	}
	created, err := tx.Users.AddIfAbsent(ctx, user, "phone")
	if err != nil {
		return nil, apperr.PersistenceFailure(err)
	}
	if created {
		return user, nil
	}

	// параллельная заявка с тем же телефоном успела создать пользователя
	user, err = tx.Users.FindOne(ctx, repository.Filter{"phone": phone})
	if err != nil {
		return nil, apperr.PersistenceFailure(err)
	}
	return user, nil
}

func resolve[T any](ctx context.Context, repo *repository.Repository[T], field, name string) (*T, error) {
	row, err := repo.FindOne(ctx, repository.Filter{"name": name})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, apperr.InvalidReferenceValue(field, name)
	case err != nil:
		return nil, apperr.PersistenceFailure(err)
	}
	return row, nil
}

// asAppError гарантирует, что наружу уходит *apperr.Error (ошибки commit и т.п. считаются persistence).
func asAppError(err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperr.PersistenceFailure(err)
}
