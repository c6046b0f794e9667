package entities

// MarketPrice holds one observed or forecast price point. Dates are stored
// as YYYY-MM-DD strings so ordering and serialization stay identical across
// the sqlite and postgres drivers.
type MarketPrice struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	MarketID    uint    `gorm:"uniqueIndex:idx_market_crop_date_pred" json:"market_id"`
	CropID      uint    `gorm:"uniqueIndex:idx_market_crop_date_pred" json:"crop_id"`
	PricePerKg  float64 `gorm:"not null" json:"price_per_kg"`
	Date        string  `gorm:"size:10;uniqueIndex:idx_market_crop_date_pred" json:"date"` // YYYY-MM-DD
	IsPredicted bool    `gorm:"uniqueIndex:idx_market_crop_date_pred" json:"is_predicted"`
}
