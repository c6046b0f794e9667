package repository

import "github.com/RahulHansraj/FarmToMarket/entities"

type MarketRepository interface {
	List() ([]entities.Market, error)
}
