package models

import "time"

const StatusWorkerNotAssigned = "worker not assigned"

// Application: заявка с сайта. Контакты клиента дублируются из формы как есть.
type Application struct {
	Base
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `json:"-"`

	ClientName    string  `gorm:"not null" json:"client_name"`
	ClientPhone   string  `gorm:"not null" json:"client_phone"`
	ClientEmail   string  `gorm:"not null" json:"client_email"`
	ClientComment *string `gorm:"type:text" json:"client_comment"`

	StatusLabel       string  `gorm:"not null;default:'worker not assigned'" json:"status_label"`
	StatusDescription *string `json:"status_description"`

	ServiceTypeID  uint         `gorm:"not null" json:"service_type_id"`
	ServiceType    ServiceType  `json:"-"`
	ClientTypeID   uint         `gorm:"not null" json:"client_type_id"`
	ClientType     ClientType   `json:"-"`
	BudgetTypeID   uint         `gorm:"not null" json:"budget_type_id"`
	BudgetType     BudgetType   `json:"-"`
	DeadlineTypeID uint         `gorm:"not null" json:"deadline_type_id"`
	DeadlineType   DeadlineType `json:"-"`

	ApprovedCost *float64 `json:"approved_cost"`

	Workers []Assignment `json:"-"`
}

// Assignment: исполнитель по заявке. Ключ составной: на одну заявку может быть несколько исполнителей.
type Assignment struct {
	ApplicationID  uint        `gorm:"primaryKey;autoIncrement:false" json:"application_id"`
	WorkerID       uint        `gorm:"primaryKey;autoIncrement:false" json:"worker_id"`
	JobDescription *string     `gorm:"type:text" json:"job_description"`
	Application    Application `json:"-"`
	Worker         User        `gorm:"foreignKey:WorkerID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
