package repository

import "github.com/RahulHansraj/FarmToMarket/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByEmail(email string) (*entities.User, error)
}
