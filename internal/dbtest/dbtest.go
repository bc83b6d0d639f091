// Package dbtest поднимает gorm поверх go-sqlmock для тестов без живого Postgres.
package dbtest

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New возвращает gorm.DB на postgres-диалекте и mock для ожиданий.
// Запросы сверяются регулярками (QueryMatcherRegexp), аргументы по умолчанию не проверяются.
func New(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return db, mock
}

// IDRows: ответ на INSERT ... RETURNING "id".
func IDRows(id uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"}).AddRow(id)
}

// NameRows: строки справочника (id, name).
func NameRows(id uint, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name"}).AddRow(id, name)
}
