package repo

import (
	"errors"

	"github.com/rfalcao/stockwatch/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(user models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
