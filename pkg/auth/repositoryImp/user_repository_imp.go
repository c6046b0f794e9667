package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/RahulHansraj/FarmToMarket/entities"
	"github.com/RahulHansraj/FarmToMarket/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var out entities.User
	if err := r.db.Where("email = ?", email).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
