package service

import (
	"errors"

	"github.com/RahulHansraj/FarmToMarket/entities"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService interface {
	Signup(name, email, phone, password string) (uint, error)
	Login(email, password string) (*entities.User, error)
}
