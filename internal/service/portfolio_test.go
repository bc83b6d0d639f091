package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soapdesign-api/internal/apperr"
	"soapdesign-api/internal/dbtest"
	"soapdesign-api/internal/repository"
)

func newPortfolio(t *testing.T) (*Portfolio, sqlmock.Sqlmock) {
	db, mock := dbtest.New(t)
	return NewPortfolio(repository.NewStore(db)), mock
}

func TestPortfolioGet(t *testing.T) {
	svc, mock := newPortfolio(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE "projects"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "cover"}).AddRow(3, "Ресторан", "cover.png"))
	mock.ExpectQuery(`SELECT \* FROM "images"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "image_url"}).AddRow(1, 3, "/images/r1.png"))
	mock.ExpectQuery(`SELECT \* FROM "project_tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "tag_id"}).AddRow(1, 3, 20))
	mock.ExpectQuery(`SELECT \* FROM "tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(20, "рестораны и кафе"))

	dto, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), dto.ID)
	assert.Equal(t, "Ресторан", dto.Title)
	assert.Equal(t, []string{"рестораны и кафе"}, dto.Tags)
	assert.Equal(t, []string{"/images/r1.png"}, dto.Imgs)
}

func TestPortfolioGetMissing(t *testing.T) {
	svc, mock := newPortfolio(t)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	dto, err := svc.Get(context.Background(), 77)
	assert.Nil(t, dto)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "Project with id:77 was not found", err.Error())
}

func TestPortfolioListFailure(t *testing.T) {
	svc, mock := newPortfolio(t)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).WillReturnError(errors.New("timeout"))

	list, err := svc.List(context.Background())
	assert.Nil(t, list)
	assert.ErrorIs(t, err, apperr.ErrPersistenceFailure)
}
