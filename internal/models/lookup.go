package models

// Справочники для формы заявки. Значения заполняются при старте (database.SeedLookups)
// и ищутся по точному совпадению имени.

type ServiceType struct {
	Base
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

type ClientType struct {
	Base
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

type BudgetType struct {
	Base
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

type DeadlineType struct {
	Base
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}
