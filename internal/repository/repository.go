package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrUnknownField = errors.New("unknown filter field")
)

// Filter: условия вида колонка = значение. Ключи: имя колонки или поля модели.
type Filter map[string]any

// Repository: CRUD для одной модели поверх gorm. db может быть как пулом, так и транзакцией.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, r.wrap("find by id", err)
	}
	return &entity, nil
}

// FindOne возвращает первую по первичному ключу запись, подходящую под фильтр.
func (r *Repository[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	q, err := r.where(ctx, filter)
	if err != nil {
		return nil, err
	}

	var entity T
	if err := q.First(&entity).Error; err != nil {
		return nil, r.wrap("find one", err)
	}
	return &entity, nil
}

func (r *Repository[T]) FindAll(ctx context.Context, filter Filter) ([]T, error) {
	q, err := r.where(ctx, filter)
	if err != nil {
		return nil, err
	}

	entities := []T{}
	if err := q.Find(&entities).Error; err != nil {
		return nil, r.wrap("find all", err)
	}
	return entities, nil
}

func (r *Repository[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	q, err := r.where(ctx, filter)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := q.Model(new(T)).Count(&count).Error; err != nil {
		return 0, r.wrap("count", err)
	}
	return count, nil
}

// Add сохраняет новую запись. Вне транзакции Store gorm сам открывает транзакцию
// на INSERT и откатывает её при ошибке.
func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return r.wrap("add", err)
	}
	return nil
}

// AddIfAbsent вставляет запись с ON CONFLICT DO NOTHING по указанным колонкам.
// false, если запись с таким ключом уже есть, entity не заполнена.
func (r *Repository[T]) AddIfAbsent(ctx context.Context, entity *T, conflictColumns ...string) (bool, error) {
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, name := range conflictColumns {
		cols = append(cols, clause.Column{Name: name})
	}

	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{Columns: cols, DoNothing: true}).
		Create(entity)
	if res.Error != nil {
		return false, r.wrap("add if absent", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository[T]) where(ctx context.Context, filter Filter) (*gorm.DB, error) {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(new(T)); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}

	q := r.db.WithContext(ctx)
	if len(filter) == 0 {
		return q, nil
	}

	conds := make(map[string]any, len(filter))
	for name, value := range filter {
		field := stmt.Schema.LookUpField(name)
		if field == nil || field.DBName == "" {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, stmt.Schema.Table, name)
		}
		conds[field.DBName] = value
	}
	return q.Where(conds), nil
}

func (r *Repository[T]) wrap(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s %s: %w", op, r.table(), err)
}

func (r *Repository[T]) table() string {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(new(T)); err != nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return stmt.Schema.Table
}
