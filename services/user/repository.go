package user

import (
	"context"
	"errors"

	"logistics-requests/errs"
	userModel "logistics-requests/models/user"

	"gorm.io/gorm"
)

// Repository stores user accounts.
type Repository interface {
	Create(ctx context.Context, u *userModel.User) error
	FindByUsername(ctx context.Context, username string) (*userModel.User, error)
	FindByID(ctx context.Context, id uint) (*userModel.User, error)
	FindActiveByPhone(ctx context.Context, phone string) (*userModel.User, error)
	List(ctx context.Context, offset, limit int) ([]userModel.User, int64, error)
	Save(ctx context.Context, u *userModel.User) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, u *userModel.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *GormRepository) FindByUsername(ctx context.Context, username string) (*userModel.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *GormRepository) FindByID(ctx context.Context, id uint) (*userModel.User, error) {
	return r.first(ctx, "id = ?", id)
}

// FindActiveByPhone matches a login-capable account by phone.
func (r *GormRepository) FindActiveByPhone(ctx context.Context, phone string) (*userModel.User, error) {
	return r.first(ctx, "phone = ? AND is_active = ? AND is_system = ?", phone, true, false)
}

func (r *GormRepository) List(ctx context.Context, offset, limit int) ([]userModel.User, int64, error) {
	visible := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&userModel.User{}).Where("is_system = ?", false)
	}
	var total int64
	if err := visible().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []userModel.User
	if err := visible().Order("id ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *GormRepository) Save(ctx context.Context, u *userModel.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *GormRepository) first(ctx context.Context, query string, args ...interface{}) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("user")
		}
		return nil, err
	}
	return &u, nil
}
