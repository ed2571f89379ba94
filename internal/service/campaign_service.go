package service

import (
	"errors"
	"strings"
	"time"

	"github.com/yemeknerede/internal/logger"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/queue"
	"github.com/yemeknerede/internal/repository"

	"gorm.io/gorm"
)

// CampaignService 营销活动服务
type CampaignService struct {
	campaignRepo repository.CampaignRepository
	queueClient  *queue.Client
}

// NewCampaignService 创建活动服务
func NewCampaignService(campaignRepo repository.CampaignRepository, queueClient *queue.Client) *CampaignService {
	return &CampaignService{campaignRepo: campaignRepo, queueClient: queueClient}
}

// 首页活动数量上限
const homepageCampaignLimit = 5

// Active 查询投放中的活动，可按城市过滤，命中后累计曝光
func (s *CampaignService) Active(city string) ([]models.Campaign, error) {
	campaigns, err := s.campaignRepo.ListActive(time.Now())
	if err != nil {
		return nil, err
	}

	filtered := filterByCity(campaigns, city)

	ids := make([]uint, 0, len(filtered))
	for _, campaign := range filtered {
		ids = append(ids, campaign.ID)
	}
	if err := s.campaignRepo.IncrementImpressions(ids); err != nil {
		logger.Warnw("campaign_impression_bump_failed", "error", err)
	}
	return filtered, nil
}

// Homepage 查询首页展示活动
func (s *CampaignService) Homepage(city string) ([]models.Campaign, error) {
	campaigns, err := s.campaignRepo.ListActive(time.Now())
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Campaign, 0, homepageCampaignLimit)
	for _, campaign := range filterByCity(campaigns, city) {
		if !campaign.ShowOnHomepage {
			continue
		}
		filtered = append(filtered, campaign)
		if len(filtered) >= homepageCampaignLimit {
			break
		}
	}
	return filtered, nil
}

// Get 获取活动详情
func (s *CampaignService) Get(id uint) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return campaign, nil
}

// Click 记录活动点击，优先异步上报
func (s *CampaignService) Click(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueCampaignMetricFlush(queue.CampaignMetricFlushPayload{
			CampaignID: id,
			Metric:     "click",
			Delta:      1,
		})
		if err == nil {
			return nil
		}
		logger.Warnw("campaign_click_enqueue_failed", "campaign_id", id, "error", err)
	}
	return s.campaignRepo.IncrementClicks(id)
}

// CampaignParams 活动创建/更新参数
type CampaignParams struct {
	Title            string
	Description      string
	Image            string
	CampaignType     string
	CouponCode       string
	TargetURL        string
	Priority         int
	ShowOnHomepage   bool
	ApplicableCities []string
	StartsAt         *time.Time
	EndsAt           *time.Time
	IsActive         bool
}

// Create 创建活动
func (s *CampaignService) Create(params CampaignParams) (*models.Campaign, error) {
	campaign := &models.Campaign{
		Title:            params.Title,
		Description:      params.Description,
		Image:            params.Image,
		CampaignType:     params.CampaignType,
		CouponCode:       strings.ToUpper(strings.TrimSpace(params.CouponCode)),
		TargetURL:        params.TargetURL,
		Priority:         params.Priority,
		ShowOnHomepage:   params.ShowOnHomepage,
		ApplicableCities: params.ApplicableCities,
		StartsAt:         params.StartsAt,
		EndsAt:           params.EndsAt,
		IsActive:         params.IsActive,
	}
	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Update 更新活动
func (s *CampaignService) Update(id uint, params CampaignParams) (*models.Campaign, error) {
	campaign, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	campaign.Title = params.Title
	campaign.Description = params.Description
	campaign.Image = params.Image
	campaign.CampaignType = params.CampaignType
	campaign.CouponCode = strings.ToUpper(strings.TrimSpace(params.CouponCode))
	campaign.TargetURL = params.TargetURL
	campaign.Priority = params.Priority
	campaign.ShowOnHomepage = params.ShowOnHomepage
	campaign.ApplicableCities = params.ApplicableCities
	campaign.StartsAt = params.StartsAt
	campaign.EndsAt = params.EndsAt
	campaign.IsActive = params.IsActive

	if err := s.campaignRepo.Update(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Delete 删除活动
func (s *CampaignService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.campaignRepo.Delete(id)
}

// List 分页查询活动（后台）
func (s *CampaignService) List(filter repository.CampaignListFilter, page, pageSize int) ([]models.Campaign, int64, error) {
	return s.campaignRepo.List(filter, page, pageSize)
}

// AddClicks 累计点击数，供任务消费侧调用
func (s *CampaignService) AddClicks(id uint, delta int64) error {
	for i := int64(0); i < delta; i++ {
		if err := s.campaignRepo.IncrementClicks(id); err != nil {
			return err
		}
	}
	return nil
}

// filterByCity 空城市或活动未限定城市时全部命中
func filterByCity(campaigns []models.Campaign, city string) []models.Campaign {
	needle := strings.ToLower(strings.TrimSpace(city))
	filtered := make([]models.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		if needle == "" || len(campaign.ApplicableCities) == 0 {
			filtered = append(filtered, campaign)
			continue
		}
		for _, candidate := range campaign.ApplicableCities {
			if strings.ToLower(candidate) == needle {
				filtered = append(filtered, campaign)
				break
			}
		}
	}
	return filtered
}
