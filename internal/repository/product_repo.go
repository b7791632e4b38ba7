package repository

import (
	"context"
	"time"

	"agrimarket/internal/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

type productModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Description   *string   `gorm:"column:description"`
	Category      string    `gorm:"column:category;index"`
	Price         float64   `gorm:"column:price"`
	StockQuantity int       `gorm:"column:stock_quantity"`
	ImageURL      *string   `gorm:"column:image_url"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (productModel) TableName() string { return "products" }

func toDomainProduct(m productModel) *domain.Product {
	var desc, image string
	if m.Description != nil {
		desc = *m.Description
	}
	if m.ImageURL != nil {
		image = *m.ImageURL
	}

	return &domain.Product{
		ID:            m.ID,
		Name:          m.Name,
		Description:   desc,
		Category:      domain.ProductCategory(m.Category),
		Price:         m.Price,
		StockQuantity: m.StockQuantity,
		ImageURL:      image,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var m productModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProduct(m), nil
}

// List returns catalog products, optionally filtered by category.
func (r *ProductRepository) List(ctx context.Context, category string) ([]domain.Product, error) {
	var ms []productModel
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	tx := q.Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Product, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainProduct(m))
	}
	return out, nil
}

// DecrementStock reduces stock by qty, failing when not enough is left.
func (r *ProductRepository) DecrementStock(ctx context.Context, id int64, qty int) error {
	tx := r.db.WithContext(ctx).
		Model(&productModel{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
