package repository

import (
	"github.com/yemeknerede/internal/models"
	"gorm.io/gorm"
)

// SettingRepository 系统设置仓储接口
type SettingRepository interface {
	Get(key string) (*models.Setting, error)
	Set(key string, value models.JSON) error
	WithTx(tx *gorm.DB) SettingRepository
}

// GormSettingRepository 系统设置仓储实现
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository 创建系统设置仓储
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &GormSettingRepository{db: db}
}

// WithTx 返回使用事务连接的仓储
func (r *GormSettingRepository) WithTx(tx *gorm.DB) SettingRepository {
	return &GormSettingRepository{db: tx}
}

func (r *GormSettingRepository) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// Set 写入设置，存在则更新
func (r *GormSettingRepository) Set(key string, value models.JSON) error {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		setting = models.Setting{Key: key, Value: value}
		return r.db.Create(&setting).Error
	}
	setting.Value = value
	return r.db.Save(&setting).Error
}
