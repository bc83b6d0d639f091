package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soapdesign-api/internal/dbtest"
	"soapdesign-api/internal/models"
)

func projectRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "cover", "task", "done", "price"})
}

func TestFindWithRelationsByID(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.MatchExpectationsInOrder(false)
	projects := NewProjectRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE "projects"."id" = \$1`).
		WillReturnRows(projectRows().AddRow(1, "Кофейня", "ребрендинг сети", "cover.png", "задача", "сделано", "от 100 000"))
	mock.ExpectQuery(`SELECT \* FROM "images" WHERE "images"."project_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "name", "image_url"}).
			AddRow(1, 1, "1", "/images/1.png").
			AddRow(2, 1, "2", "/images/2.png"))
	mock.ExpectQuery(`SELECT \* FROM "project_tags" WHERE "project_tags"."project_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "tag_id"}).
			AddRow(1, 1, 10).
			AddRow(2, 1, 11))
	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE "tags"."id" IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(10, "брендинг").
			AddRow(11, "логотип"))

	p, err := projects.FindWithRelationsByID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, p.Images, 2)
	require.Len(t, p.Tags, 2)

	dto := Flatten(*p)
	assert.Equal(t, []string{"брендинг", "логотип"}, dto.Tags)
	assert.Equal(t, []string{"/images/1.png", "/images/2.png"}, dto.Imgs)
	assert.Equal(t, "от 100 000", dto.Price)
}

func TestFindWithRelationsByIDMissing(t *testing.T) {
	db, mock := dbtest.New(t)
	projects := NewProjectRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).WillReturnRows(projectRows())

	p, err := projects.FindWithRelationsByID(context.Background(), 99)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindAllWithRelations(t *testing.T) {
	db, mock := dbtest.New(t)
	mock.MatchExpectationsInOrder(false)
	projects := NewProjectRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "projects" ORDER BY projects.id`).
		WillReturnRows(projectRows().
			AddRow(1, "Кофейня", "", "c1.png", "", "", "").
			AddRow(2, "Клиника", "", "c2.png", "", "", ""))
	mock.ExpectQuery(`SELECT \* FROM "images" WHERE "images"."project_id" IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "image_url"}).
			AddRow(1, 2, "/images/a.png").
			AddRow(2, 2, "/images/b.png"))
	mock.ExpectQuery(`SELECT \* FROM "project_tags" WHERE "project_tags"."project_id" IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "tag_id"}).
			AddRow(1, 1, 10).
			AddRow(2, 2, 10).
			AddRow(3, 2, 12))
	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE "tags"."id" IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(10, "брендинг").
			AddRow(12, "медицина"))

	list, err := projects.FindAllWithRelations(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, uint(1), list[0].ID)
	assert.Equal(t, []string{"брендинг"}, list[0].Tags)
	assert.NotNil(t, list[0].Imgs)
	assert.Empty(t, list[0].Imgs)

	assert.Equal(t, uint(2), list[1].ID)
	assert.Equal(t, []string{"брендинг", "медицина"}, list[1].Tags)
	assert.Equal(t, []string{"/images/a.png", "/images/b.png"}, list[1].Imgs)
}

func TestFindAllWithRelationsEmpty(t *testing.T) {
	db, mock := dbtest.New(t)
	projects := NewProjectRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).WillReturnRows(projectRows())

	list, err := projects.FindAllWithRelations(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestFlattenWithoutRelations(t *testing.T) {
	dto := Flatten(models.Project{Base: models.Base{ID: 3}, Title: "Лого"})

	assert.Equal(t, uint(3), dto.ID)
	assert.Equal(t, []string{}, dto.Tags)
	assert.Equal(t, []string{}, dto.Imgs)
}
