package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"unique;not null"`
	Description string
	Icon        string
	CreatedAt   time.Time `gorm:"not null"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	return nil
}

type CategoryDAO struct {
	db *gorm.DB
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{
		db: db,
	}
}

func (d *CategoryDAO) FindAll(ctx context.Context) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).Order("name ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *CategoryDAO) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Category{}).Where("name = ?", name).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// seedCategories inserts the built-in categories, leaving existing rows alone.
func seedCategories(db *gorm.DB) error {
	defaults := []Category{
		{Name: "Medical", Description: "Treatment, surgery and recovery costs", Icon: "heart-pulse"},
		{Name: "Pets", Description: "Veterinary care and animal rescue", Icon: "paw"},
		{Name: "Emergency", Description: "Urgent help after accidents and disasters", Icon: "siren"},
		{Name: "Education", Description: "Tuition, school supplies and training", Icon: "graduation-cap"},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&defaults).Error
}
