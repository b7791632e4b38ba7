package repository

import (
	"context"
	"time"

	"agrimarket/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	SellerID     int64     `gorm:"column:seller_id;index"`
	Name         string    `gorm:"column:name"`
	Description  *string   `gorm:"column:description"`
	PricePerHour float64   `gorm:"column:price_per_hour"`
	IsAvailable  bool      `gorm:"column:is_available"`
	ImageURL     *string   `gorm:"column:image_url"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (equipmentModel) TableName() string { return "equipment" }

func toDomainEquipment(m equipmentModel) *domain.Equipment {
	var desc, image string
	if m.Description != nil {
		desc = *m.Description
	}
	if m.ImageURL != nil {
		image = *m.ImageURL
	}

	return &domain.Equipment{
		ID:           m.ID,
		SellerID:     m.SellerID,
		Name:         m.Name,
		Description:  desc,
		PricePerHour: m.PricePerHour,
		IsAvailable:  m.IsAvailable,
		ImageURL:     image,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	var desc, image *string
	if e.Description != "" {
		v := e.Description
		desc = &v
	}
	if e.ImageURL != "" {
		v := e.ImageURL
		image = &v
	}

	return equipmentModel{
		ID:           e.ID,
		SellerID:     e.SellerID,
		Name:         e.Name,
		Description:  desc,
		PricePerHour: e.PricePerHour,
		IsAvailable:  e.IsAvailable,
		ImageURL:     image,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEquipment(m), nil
}

// ListAvailable returns equipment open for booking, newest first. A non-zero
// sellerID narrows the catalog to that seller's listings.
func (r *EquipmentRepository) ListAvailable(ctx context.Context, sellerID int64) ([]domain.Equipment, error) {
	q := r.db.WithContext(ctx).Where("is_available = ?", true)
	if sellerID != 0 {
		q = q.Where("seller_id = ?", sellerID)
	}

	var ms []equipmentModel
	tx := q.Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Equipment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Equipment, error) {
	var ms []equipmentModel
	tx := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Equipment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

// GetIDsBySeller returns only the ids of a seller's equipment. Used by the
// booking moderation list, which fetches owned ids first and bookings second.
func (r *EquipmentRepository) GetIDsBySeller(ctx context.Context, sellerID int64) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("seller_id = ?", sellerID).
		Pluck("id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ids, nil
}

func (r *EquipmentRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	return r.db.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("id = ?", id).
		Update("is_available", available).Error
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&equipmentModel{}, id).Error
}
