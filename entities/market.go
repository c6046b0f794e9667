package entities

type Market struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:100;not null" json:"name"`
	Location     string  `gorm:"size:100;not null" json:"location"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	SpoilageRisk string  `gorm:"size:20" json:"spoilage_risk"` // Low|Medium|High
}

type Seller struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MarketID uint   `gorm:"index" json:"market_id"`
	Name     string `gorm:"size:100" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`
	Email    string `gorm:"size:100" json:"email"`
	Address  string `json:"address"`
}
