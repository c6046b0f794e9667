package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/RahulHansraj/FarmToMarket/entities"
	"github.com/RahulHansraj/FarmToMarket/pkg/price/repository"
)

type priceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PriceRepository { return &priceRepo{db} }

func (r *priceRepo) List(crop, market string) ([]repository.PriceRow, error) {
	q := r.db.Model(&entities.MarketPrice{}).
		Select("market_prices.date AS date, market_prices.price_per_kg AS price, market_prices.is_predicted AS is_predicted, crops.name AS crop, markets.name AS market").
		Joins("JOIN crops ON crops.id = market_prices.crop_id").
		Joins("JOIN markets ON markets.id = market_prices.market_id")

	if crop != "" {
		q = q.Where("LOWER(crops.name) LIKE LOWER(?)", crop)
	}
	if market != "" {
		q = q.Where("LOWER(markets.name) LIKE LOWER(?)", market)
	}

	out := make([]repository.PriceRow, 0)
	if err := q.Order("market_prices.date ASC").Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
