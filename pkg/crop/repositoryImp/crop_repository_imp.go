package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RahulHansraj/FarmToMarket/entities"
	"github.com/RahulHansraj/FarmToMarket/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) List() ([]entities.Crop, error) {
	out := make([]entities.Crop, 0)
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) FindOrCreate(name string) (*entities.Crop, error) {
	var out entities.Crop
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&out).Error
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	out = entities.Crop{Name: name}
	if err := r.db.Create(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
