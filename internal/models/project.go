package models

// Project: работа из портфолио.
type Project struct {
	Base
	Title       string `json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Cover       string `json:"cover"`
	Task        string `gorm:"type:text" json:"task"`
	Done        string `gorm:"type:text" json:"done"`
	Price       string `json:"price"`

	FromApplicationID *uint        `json:"from_application_id"`
	FromApplication   *Application `gorm:"foreignKey:FromApplicationID" json:"-"`

	Images []Image      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Tags   []ProjectTag `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Image struct {
	Base
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
}

type Tag struct {
	Base
	Name string `gorm:"size:100" json:"name"`
}

// ProjectTag: связь проект-тег, пара (project_id, tag_id) уникальна.
type ProjectTag struct {
	Base
	ProjectID uint `gorm:"not null;uniqueIndex:project_tag_unique_id" json:"project_id"`
	TagID     uint `gorm:"not null;uniqueIndex:project_tag_unique_id" json:"tag_id"`
	Tag       Tag  `json:"-"`
}
