package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/models"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

type UserStore struct {
	DB     *gorm.DB
	Hasher PasswordHasher
}

type NewUser struct {
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// UserUpdate overwrites all three profile columns. A field left empty is
// written as the empty string; nothing is merged with the stored row.
type UserUpdate struct {
	ID        uint
	Username  string
	FirstName string
	LastName  string
}

func (s *UserStore) Index(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, storeErr("could not get users", err)
	}
	return users, nil
}

func (s *UserStore) Create(ctx context.Context, u NewUser) (*models.User, error) {
	op := fmt.Sprintf("could not create user %s", u.Username)

	digest, err := s.Hasher.Hash(u.Password)
	if err != nil {
		return nil, storeErr(op, err)
	}

	user := models.User{
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		PasswordDigest: digest,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, storeErr(op, err)
	}
	return &user, nil
}

func (s *UserStore) Read(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, storeErr(fmt.Sprintf("could not get user with ID: %d", id), err)
	}
	return &user, nil
}

func (s *UserStore) Update(ctx context.Context, u UserUpdate) (*models.User, error) {
	op := fmt.Sprintf("could not update user with ID: %d", u.ID)

	var user models.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", u.ID).
			Select("username", "firstname", "lastname").
			Updates(models.User{Username: u.Username, FirstName: u.FirstName, LastName: u.LastName})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ?", u.ID).First(&user).Error
	})
	if err != nil {
		return nil, storeErr(op, err)
	}
	return &user, nil
}

// Delete is idempotent: deleting a missing id still reports true.
func (s *UserStore) Delete(ctx context.Context, id uint) (bool, error) {
	if err := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.User{}).Error; err != nil {
		return false, storeErr(fmt.Sprintf("could not delete user %d", id), err)
	}
	return true, nil
}

// Authenticate returns nil, nil both for an unknown username and a wrong
// password so callers cannot enumerate accounts.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(fmt.Sprintf("could not authenticate user %s", username), err)
	}
	if !s.Hasher.Verify(password, user.PasswordDigest) {
		return nil, nil
	}
	return &user, nil
}
