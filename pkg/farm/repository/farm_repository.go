package repository

import "github.com/RahulHansraj/FarmToMarket/entities"

type FarmRepository interface {
	Create(d *entities.FarmData) error
	ListByUser(userID uint) ([]entities.FarmData, error)
}
