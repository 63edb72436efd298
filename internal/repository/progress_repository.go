package repository

import (
	"kanasense_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.Progress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) FindByUserID(userID string) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.Preload("LevelProgress").
		Where("user_id = ?", userID).
		First(&progress).Error
	return &progress, err
}

// Save 连同层级成绩行一起落库，新增的行由关联自动创建
func (r *ProgressRepository) Save(progress *model.Progress) error {
	return r.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(progress).Error
}

// Reset 清掉层级成绩行后保存归零的主记录
func (r *ProgressRepository) Reset(progress *model.Progress) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("progress_id = ?", progress.ID).
			Delete(&model.LevelProgress{}).Error; err != nil {
			return err
		}
		return tx.Save(progress).Error
	})
}

// TopByStars 按总星数取前 N 名，Redis 排行榜不可用时的兜底查询
func (r *ProgressRepository) TopByStars(limit int) ([]model.Progress, error) {
	var progresses []model.Progress
	err := r.DB.Order("total_stars DESC").Limit(limit).Find(&progresses).Error
	return progresses, err
}
