package repository

import "github.com/RahulHansraj/FarmToMarket/entities"

type CropRepository interface {
	List() ([]entities.Crop, error)
	// FindOrCreate resolves a crop by name case-insensitively, creating the
	// row when the name is unknown.
	FindOrCreate(name string) (*entities.Crop, error)
}
