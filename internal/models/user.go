package models

type UserType string

const (
	UserTypeClient UserType = "user"
	UserTypeWorker UserType = "worker"
	UserTypeAdmin  UserType = "admin"
)

type User struct {
	Base
	Name  string  `gorm:"not null" json:"name"`
	Phone string  `gorm:"size:32;not null;uniqueIndex" json:"phone"` // только цифры
	Email *string `json:"email"`

	UserType         UserType `gorm:"type:varchar(20);not null;default:'user'" json:"user_type"`
	Job              *string  `json:"job"`
	HasTelegram      bool     `gorm:"not null;default:false" json:"has_telegram"`
	TelegramUsername *string  `json:"telegram_username"`
	TelegramID       *int64   `json:"telegram_id"`
	HasWhatsapp      bool     `gorm:"not null;default:false" json:"has_whatsapp"`
	UserImageURL     *string  `json:"user_image_url"`
	IsActive         bool     `gorm:"not null;default:true" json:"is_active"`
	ExtraInfo        *string  `gorm:"type:text" json:"extra_info"`

	Applications         []Application `json:"-"`
	AssignedApplications []Assignment  `gorm:"foreignKey:WorkerID" json:"-"`
}
