package repository

import (
	"context"

	"gorm.io/gorm"

	"soapdesign-api/internal/models"
)

// ProjectDTO: плоское представление проекта для сайта: теги и картинки уже развёрнуты в строки.
type ProjectDTO struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Cover       string   `json:"cover"`
	Imgs        []string `json:"imgs"`
	Task        string   `json:"task"`
	Done        string   `json:"done"`
	Price       string   `json:"price"`
}

type ProjectRepository struct {
	*Repository[models.Project]
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{Repository: New[models.Project](db)}
}

// FindWithRelationsByID грузит проект вместе с картинками и тегами.
func (r *ProjectRepository) FindWithRelationsByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := withRelations(r.db.WithContext(ctx)).First(&project, id).Error; err != nil {
		return nil, r.wrap("find with relations", err)
	}
	return &project, nil
}

func (r *ProjectRepository) FindAllWithRelations(ctx context.Context, filter Filter) ([]ProjectDTO, error) {
	q, err := r.where(ctx, filter)
	if err != nil {
		return nil, err
	}

	var projects []models.Project
	if err := withRelations(q).Order("projects.id").Find(&projects).Error; err != nil {
		return nil, r.wrap("find all with relations", err)
	}

	result := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		result = append(result, Flatten(p))
	}
	return result, nil
}

// Flatten ожидает, что Images и Tags.Tag уже загружены.
func Flatten(p models.Project) ProjectDTO {
	tags := make([]string, 0, len(p.Tags))
	for _, pt := range p.Tags {
		tags = append(tags, pt.Tag.Name)
	}

	imgs := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		imgs = append(imgs, img.ImageURL)
	}

	return ProjectDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Tags:        tags,
		Cover:       p.Cover,
		Imgs:        imgs,
		Task:        p.Task,
		Done:        p.Done,
		Price:       p.Price,
	}
}

// один запрос на каждую связь, без N+1 по тегам
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id") }).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("project_tags.id") }).
		Preload("Tags.Tag")
}
