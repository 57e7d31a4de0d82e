package repositories

import (
	"fmt"

	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepo interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	GetLatest() (*models.Product, error)
	Update(product *models.Product) error
	List(limit int) ([]models.Product, error)
	Count() (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepo {
	return &productRepo{db: db}
}

func (r *productRepo) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) GetByID(id string) (*models.Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID: %w", err)
	}

	var product models.Product
	if err := r.db.First(&product, "id = ?", uid).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) GetLatest() (*models.Product, error) {
	var product models.Product
	if err := r.db.Order("created_at DESC").First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) List(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	var products []models.Product
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}
