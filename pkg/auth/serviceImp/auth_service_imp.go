package serviceImp

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/RahulHansraj/FarmToMarket/entities"
	repo "github.com/RahulHansraj/FarmToMarket/pkg/auth/repository"
	"github.com/RahulHansraj/FarmToMarket/pkg/auth/service"
)

type authSvc struct{ r repo.UserRepository }

func NewAuthService(r repo.UserRepository) service.AuthService { return &authSvc{r} }

func (s *authSvc) Signup(name, email, phone, password string) (uint, error) {
	if _, err := s.r.FindByEmail(email); err == nil {
		return 0, service.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	u := &entities.User{Name: name, Email: email, Phone: phone, PasswordHash: string(hash)}
	if err := s.r.Create(u); err != nil {
		// Two concurrent signups can both pass the pre-check; the unique index
		// rejects the loser, which still belongs on the conflict path.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, service.ErrEmailTaken
		}
		return 0, err
	}
	return u.ID, nil
}

func (s *authSvc) Login(email, password string) (*entities.User, error) {
	u, err := s.r.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, service.ErrInvalidCredentials
	}
	return u, nil
}
