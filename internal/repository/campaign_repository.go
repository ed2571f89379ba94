package repository

import (
	"time"

	"github.com/yemeknerede/internal/models"
	"gorm.io/gorm"
)

// CampaignRepository 活动仓储接口
type CampaignRepository interface {
	Create(campaign *models.Campaign) error
	GetByID(id uint) (*models.Campaign, error)
	Update(campaign *models.Campaign) error
	Delete(id uint) error
	List(filter CampaignListFilter, page, pageSize int) ([]models.Campaign, int64, error)
	ListActive(now time.Time) ([]models.Campaign, error)
	IncrementImpressions(ids []uint) error
	IncrementClicks(id uint) error
	WithTx(tx *gorm.DB) CampaignRepository
}

// GormCampaignRepository 活动仓储实现
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository 创建活动仓储
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &GormCampaignRepository{db: db}
}

// WithTx 返回使用事务连接的仓储
func (r *GormCampaignRepository) WithTx(tx *gorm.DB) CampaignRepository {
	return &GormCampaignRepository{db: tx}
}

func (r *GormCampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

func (r *GormCampaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.First(&campaign, id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *GormCampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

func (r *GormCampaignRepository) Delete(id uint) error {
	return r.db.Delete(&models.Campaign{}, id).Error
}

func (r *GormCampaignRepository) List(filter CampaignListFilter, page, pageSize int) ([]models.Campaign, int64, error) {
	query := r.db.Model(&models.Campaign{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.CampaignType != "" {
		query = query.Where("campaign_type = ?", filter.CampaignType)
	}
	if filter.ShowOnHomepage != nil {
		query = query.Where("show_on_homepage = ?", *filter.ShowOnHomepage)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaigns []models.Campaign
	if err := applyPagination(query, page, pageSize).Order("id desc").Find(&campaigns).Error; err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// ListActive 返回当前时间窗口内启用的活动，按优先级降序
func (r *GormCampaignRepository) ListActive(now time.Time) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Model(&models.Campaign{}).
		Where("is_active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("priority desc, id asc").
		Find(&campaigns).Error
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *GormCampaignRepository) IncrementImpressions(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.Campaign{}).
		Where("id IN ?", ids).
		UpdateColumn("impression_count", gorm.Expr("impression_count + 1")).Error
}

func (r *GormCampaignRepository) IncrementClicks(id uint) error {
	return r.db.Model(&models.Campaign{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + 1")).Error
}
