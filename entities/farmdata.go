package entities

import "time"

type FarmData struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	UserID         uint    `gorm:"index" json:"user_id"`
	CropID         uint    `gorm:"index" json:"crop_id"`
	QuantityKg     float64 `json:"quantity_kg"`
	HarvestDate    string  `gorm:"size:10" json:"harvest_date"` // YYYY-MM-DD
	Location       string  `gorm:"size:200" json:"location"`
	StorageDetails string  `json:"storage_details,omitempty"`

	CreatedAt time.Time `json:"-"`
}
