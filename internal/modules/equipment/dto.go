package equipment

type CreateEquipmentRequest struct {
	SellerID     int64   `json:"-"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gte=0"`
	ImageURL     string  `json:"image_url"`
}

type SetAvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}
