package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/RahulHansraj/FarmToMarket/entities"
	"github.com/RahulHansraj/FarmToMarket/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(d *entities.FarmData) error { return r.db.Create(d).Error }

func (r *farmRepo) ListByUser(userID uint) ([]entities.FarmData, error) {
	out := make([]entities.FarmData, 0)
	if err := r.db.Where("user_id = ?", userID).Order("harvest_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
