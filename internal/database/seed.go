package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"soapdesign-api/internal/models"
	"soapdesign-api/internal/repository"
)

// Словари формы заявки на сайте.
var (
	ServiceTypes = []string{
		"дизайн печат. материалов",
		"брендинг",
		"логотип",
		"дизайн упаковки",
		"айдентика",
		"дизайн презентации",
		"ui/ux",
		"ребрендинг",
		"дизайн сайта",
	}

	BudgetTypes = []string{
		"не ограничен",
		"до 50 000",
		"до 100 000",
		"до 500 000",
		"надо считать",
		"другое",
	}

	ClientTypes = []string{
		"недвижимость",
		"красота",
		"рестораны и кафе",
		"авто",
		"доставка",
		"логистика",
		"образование",
		"медицина",
		"строительство",
		"финансы",
		"юридические услуги",
		"другое",
	}

	DeadlineTypes = []string{
		"2 недели",
		"не ограничен",
		"меньше 1 недели",
		"1 месяц",
	}
)

// SeedLookups заполняет справочники. Повторный запуск ничего не добавляет:
// каждое значение вставляется, только если его ещё нет.
func SeedLookups(ctx context.Context, store *repository.Store, log *zap.Logger) error {
	if err := seedNames(ctx, store.ServiceTypes, ServiceTypes, func(n string) *models.ServiceType {
		return &models.ServiceType{Name: n}
	}, log); err != nil {
		return err
	}
	if err := seedNames(ctx, store.BudgetTypes, BudgetTypes, func(n string) *models.BudgetType {
		return &models.BudgetType{Name: n}
	}, log); err != nil {
		return err
	}
	if err := seedNames(ctx, store.ClientTypes, ClientTypes, func(n string) *models.ClientType {
		return &models.ClientType{Name: n}
	}, log); err != nil {
		return err
	}
	return seedNames(ctx, store.DeadlineTypes, DeadlineTypes, func(n string) *models.DeadlineType {
		return &models.DeadlineType{Name: n}
	}, log)
}

func seedNames[T any](ctx context.Context, repo *repository.Repository[T], names []string, build func(string) *T, log *zap.Logger) error {
	for _, name := range names {
		count, err := repo.Count(ctx, repository.Filter{"name": name})
		if err != nil {
			return fmt.Errorf("check seed value %q: %w", name, err)
		}
		if count > 0 {
			// уже есть, пропускаем
			continue
		}

		if err := repo.Add(ctx, build(name)); err != nil {
			return fmt.Errorf("seed value %q: %w", name, err)
		}
		log.Debug("seeded lookup value", zap.String("name", name))
	}
	return nil
}
