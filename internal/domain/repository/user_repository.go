package repository

import "github.com/hashiv-am/hashiv-api/internal/domain/entity"

// UserRepository is the persistence port for User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
