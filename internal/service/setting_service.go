package service

import (
	"errors"

	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"gorm.io/gorm"
)

// SettingService 系统设置服务
type SettingService struct {
	settingRepo repository.SettingRepository
}

// NewSettingService 创建系统设置服务
func NewSettingService(settingRepo repository.SettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

// Get 读取设置，不存在时返回空值
func (s *SettingService) Get(key string) (models.JSON, error) {
	setting, err := s.settingRepo.Get(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.JSON{}, nil
		}
		return nil, err
	}
	return setting.Value, nil
}

// Set 写入设置
func (s *SettingService) Set(key string, value models.JSON) error {
	return s.settingRepo.Set(key, value)
}
