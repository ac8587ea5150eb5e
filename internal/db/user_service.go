package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"designtrack/internal/models"
)

// CreateUser registers a department member. Usernames are unique.
func CreateUser(ctx context.Context, username, name string, role models.UserRole) (*models.User, error) {
	if username == "" || name == "" {
		return nil, fmt.Errorf("user needs a username and a name")
	}

	var existing models.User
	err := DB.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("username %q already taken", username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Name:     name,
		Role:     role,
	}
	if err := DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// ListUsers returns all users ordered by name.
func ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := DB.WithContext(ctx).Order("name ASC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByUsername resolves a username to its record.
func GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("user %q not found", username)
	}
	return &user, nil
}
