package queue

import (
	"encoding/json"

	"github.com/yemeknerede/internal/constants"

	"github.com/hibiken/asynq"
)

// NotificationDispatchPayload 通知投递任务载荷
type NotificationDispatchPayload struct {
	UserID uint   `json:"user_id"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	RefID  uint   `json:"ref_id"`
}

// NewNotificationDispatchTask 构建通知投递任务
func NewNotificationDispatchTask(payload NotificationDispatchPayload) (*asynq.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskNotificationDispatch, raw), nil
}

// RestaurantRatingRecalcPayload 餐厅评分重算任务载荷
type RestaurantRatingRecalcPayload struct {
	RestaurantID uint `json:"restaurant_id"`
}

// NewRestaurantRatingRecalcTask 构建评分重算任务
func NewRestaurantRatingRecalcTask(payload RestaurantRatingRecalcPayload) (*asynq.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskRestaurantRatingRecalc, raw), nil
}

// CampaignMetricFlushPayload 活动指标上报任务载荷
type CampaignMetricFlushPayload struct {
	CampaignID uint   `json:"campaign_id"`
	Metric     string `json:"metric"` // impression / click
	Delta      int64  `json:"delta"`
}

// NewCampaignMetricFlushTask 构建活动指标上报任务
func NewCampaignMetricFlushTask(payload CampaignMetricFlushPayload) (*asynq.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskCampaignMetricFlush, raw), nil
}
