package repository

import (
	"context"
	"time"

	"agrimarket/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	EquipmentID int64     `gorm:"column:equipment_id;index"`
	FarmerID    int64     `gorm:"column:farmer_id;index"`
	StartDate   time.Time `gorm:"column:start_date"`
	EndDate     time.Time `gorm:"column:end_date"`
	TotalCost   float64   `gorm:"column:total_cost"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		EquipmentID: m.EquipmentID,
		FarmerID:    m.FarmerID,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		TotalCost:   m.TotalCost,
		Status:      domain.BookingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		EquipmentID: b.EquipmentID,
		FarmerID:    b.FarmerID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		TotalCost:   b.TotalCost,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// SellerBookingDetails is a moderation-list row: the booking joined with the
// equipment it references and the requesting farmer's contact profile.
type SellerBookingDetails struct {
	ID           int64     `gorm:"column:id"`
	EquipmentID  int64     `gorm:"column:equipment_id"`
	FarmerID     int64     `gorm:"column:farmer_id"`
	StartDate    time.Time `gorm:"column:start_date"`
	EndDate      time.Time `gorm:"column:end_date"`
	TotalCost    float64   `gorm:"column:total_cost"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	EquipName    string    `gorm:"column:equip_name"`
	PricePerHour float64   `gorm:"column:price_per_hour"`
	FarmerName   string    `gorm:"column:farmer_name"`
	FarmerPhone  *string   `gorm:"column:farmer_phone"`
}

// FarmerBookingDetails is a tracking-view row: the booking joined with the
// equipment and the selling profile.
type FarmerBookingDetails struct {
	ID           int64     `gorm:"column:id"`
	EquipmentID  int64     `gorm:"column:equipment_id"`
	StartDate    time.Time `gorm:"column:start_date"`
	EndDate      time.Time `gorm:"column:end_date"`
	TotalCost    float64   `gorm:"column:total_cost"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	EquipName    string    `gorm:"column:equip_name"`
	PricePerHour float64   `gorm:"column:price_per_hour"`
	SellerName   string    `gorm:"column:seller_name"`
	SellerPhone  *string   `gorm:"column:seller_phone"`
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetEquipmentOwnerForBooking resolves the seller who owns the booked
// equipment together with the booking's current status.
func (r *BookingRepository) GetEquipmentOwnerForBooking(ctx context.Context, bookingID int64) (ownerID int64, status string, err error) {
	var row struct {
		OwnerID int64  `gorm:"column:owner_id"`
		Status  string `gorm:"column:status"`
	}
	q := `
SELECT e.seller_id AS owner_id, b.status AS status
FROM bookings b
JOIN equipment e ON e.id = b.equipment_id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, bookingID).Scan(&row)
	if tx.Error != nil {
		return 0, "", tx.Error
	}
	return row.OwnerID, row.Status, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

// ListByEquipmentIDs returns bookings for any of the given equipment ids,
// newest first, joined with equipment and farmer details.
func (r *BookingRepository) ListByEquipmentIDs(ctx context.Context, equipmentIDs []int64) ([]SellerBookingDetails, error) {
	var rows []SellerBookingDetails
	q := `
SELECT b.id, b.equipment_id, b.farmer_id, b.start_date, b.end_date,
       b.total_cost, b.status, b.created_at,
       e.name AS equip_name, e.price_per_hour,
       u.name AS farmer_name, u.phone AS farmer_phone
FROM bookings b
JOIN equipment e ON e.id = b.equipment_id
JOIN users u ON u.id = b.farmer_id
WHERE b.equipment_id IN ?
ORDER BY b.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, equipmentIDs).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// ListByFarmerWithDetails returns a farmer's bookings joined with equipment
// and seller profile, newest first.
func (r *BookingRepository) ListByFarmerWithDetails(ctx context.Context, farmerID int64) ([]FarmerBookingDetails, error) {
	var rows []FarmerBookingDetails
	q := `
SELECT b.id, b.equipment_id, b.start_date, b.end_date,
       b.total_cost, b.status, b.created_at,
       e.name AS equip_name, e.price_per_hour,
       u.name AS seller_name, u.phone AS seller_phone
FROM bookings b
JOIN equipment e ON e.id = b.equipment_id
JOIN users u ON u.id = e.seller_id
WHERE b.farmer_id = ?
ORDER BY b.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, farmerID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// CountPendingByEquipmentIDs backs the pending badge on the seller's
// moderation list.
func (r *BookingRepository) CountPendingByEquipmentIDs(ctx context.Context, equipmentIDs []int64) (int64, error) {
	if len(equipmentIDs) == 0 {
		return 0, nil
	}
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("equipment_id IN ? AND status = ?", equipmentIDs, string(domain.BookingPending)).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
