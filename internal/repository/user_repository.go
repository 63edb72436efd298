package repository

import (
	"time"

	"kanasense_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByUserID(userID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("user_id = ?", userID).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// UpdateLastSeen 只刷新活跃时间，ActivityMiddleware 异步调用
func (r *UserRepository) UpdateLastSeen(userID string) error {
	return r.DB.Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("last_active", time.Now()).
		Error
}

// FindByUserIDs 批量查询，排行榜回填用户名用
func (r *UserRepository) FindByUserIDs(userIDs []string) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("user_id IN ?", userIDs).Find(&users).Error
	return users, err
}
