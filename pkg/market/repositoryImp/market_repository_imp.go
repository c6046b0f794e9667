package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/RahulHansraj/FarmToMarket/entities"
	"github.com/RahulHansraj/FarmToMarket/pkg/market/repository"
)

type marketRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MarketRepository { return &marketRepo{db} }

func (r *marketRepo) List() ([]entities.Market, error) {
	out := make([]entities.Market, 0)
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
