package services

import (
	"errors"

	"github.com/aurumtrade/aurum-api/internal/models"
	"gorm.io/gorm"
)

// ErrEmailTaken is returned when a signup reuses an existing email address.
var ErrEmailTaken = errors.New("email already registered")

type UserService interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	// PromoteToAdmin sets role=admin on the user with the given email.
	// Signup runs it as a compensating step after user creation.
	PromoteToAdmin(email string) error
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(user *models.User) error {
	var existing models.User
	if err := s.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrEmailTaken
	}

	err := s.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) PromoteToAdmin(email string) error {
	return s.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("role", models.RoleAdmin).Error
}
