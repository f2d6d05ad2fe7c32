package seeders

import (
	"context"
	"errors"
	"fmt"

	"logistics-requests/constants"
	"logistics-requests/logger"
	"logistics-requests/models/user"
	"logistics-requests/services/auth"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedSystemOwner creates the account that owns public requests with no
// matching employee. It has a random password and cannot log in.
func SeedSystemOwner(ctx context.Context, db *gorm.DB, username string) error {
	logger.Info("🔍 Checking system owner " + username + "...")

	existing, err := find(ctx, db, username)
	if err != nil {
		return err
	}
	if existing != nil {
		if !existing.IsSystem {
			return fmt.Errorf("seed: user %q exists and is not a system account", username)
		}
		logger.Success("System owner already present")
		return nil
	}

	hash, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		return err
	}
	owner := &user.User{
		Uuid:         uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         constants.RoleEmployee,
		FirstName:    "Public",
		LastName:     "Intake",
		IsActive:     true,
		IsSystem:     true,
	}
	if err := db.WithContext(ctx).Create(owner).Error; err != nil {
		return fmt.Errorf("seed system owner: %w", err)
	}
	logger.Success("System owner created")
	return nil
}

// SeedManager creates the first manager, or promotes the existing user.
// The password of an existing account is left alone.
func SeedManager(ctx context.Context, db *gorm.DB, username, password string) error {
	existing, err := find(ctx, db, username)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Role == constants.RoleManager {
			logger.Success("Manager " + username + " already present")
			return nil
		}
		if err := db.WithContext(ctx).Model(existing).Update("role", constants.RoleManager).Error; err != nil {
			return fmt.Errorf("promote manager: %w", err)
		}
		logger.Success("User " + username + " promoted to manager")
		return nil
	}

	if len(password) < auth.MinPasswordLength {
		return fmt.Errorf("seed: MANAGER_PASSWORD must be at least %d characters", auth.MinPasswordLength)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	manager := &user.User{
		Uuid:         uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         constants.RoleManager,
		IsActive:     true,
	}
	if err := db.WithContext(ctx).Create(manager).Error; err != nil {
		return fmt.Errorf("seed manager: %w", err)
	}
	logger.Success("Manager " + username + " created")
	return nil
}

func find(ctx context.Context, db *gorm.DB, username string) (*user.User, error) {
	var u user.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
