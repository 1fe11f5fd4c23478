package repository

import "github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"

// UserRepository is the persistence port for User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// ListStaff returns the staff accounts belonging to an owner.
	ListStaff(ownerID string) ([]*entity.User, error)
}
