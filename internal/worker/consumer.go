// Package worker 消费异步任务
package worker

import (
	"context"
	"encoding/json"

	"github.com/yemeknerede/internal/constants"
	"github.com/yemeknerede/internal/logger"
	"github.com/yemeknerede/internal/provider"
	"github.com/yemeknerede/internal/queue"
	"github.com/yemeknerede/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建任务消费者
func NewConsumer(container *provider.Container) *Consumer {
	return &Consumer{Container: container}
}

// Register 注册任务处理函数
func (c *Consumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskNotificationDispatch, c.handleNotificationDispatch)
	mux.HandleFunc(constants.TaskRestaurantRatingRecalc, c.handleRestaurantRatingRecalc)
	mux.HandleFunc(constants.TaskCampaignMetricFlush, c.handleCampaignMetricFlush)
}

// handleNotificationDispatch 落库用户通知
func (c *Consumer) handleNotificationDispatch(ctx context.Context, task *asynq.Task) error {
	var payload queue.NotificationDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("notification_dispatch_payload_invalid", "error", err)
		return nil
	}
	if payload.UserID == 0 {
		logger.Debugw("notification_dispatch_skipped", "reason", "empty_user")
		return nil
	}

	_, err := c.NotificationService.Dispatch(service.DispatchParams{
		UserID: payload.UserID,
		Type:   payload.Type,
		Title:  payload.Title,
		Body:   payload.Body,
		RefID:  payload.RefID,
	})
	if err != nil {
		logger.Warnw("notification_dispatch_failed", "user_id", payload.UserID, "error", err)
		return err
	}
	logger.Debugw("notification_dispatched", "user_id", payload.UserID, "type", payload.Type)
	return nil
}

// handleRestaurantRatingRecalc 重算餐厅评分
func (c *Consumer) handleRestaurantRatingRecalc(ctx context.Context, task *asynq.Task) error {
	var payload queue.RestaurantRatingRecalcPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("rating_recalc_payload_invalid", "error", err)
		return nil
	}
	if payload.RestaurantID == 0 {
		logger.Debugw("rating_recalc_skipped", "reason", "empty_restaurant")
		return nil
	}

	if err := c.ReviewService.RecalcRating(payload.RestaurantID); err != nil {
		logger.Warnw("rating_recalc_failed", "restaurant_id", payload.RestaurantID, "error", err)
		return err
	}
	logger.Debugw("rating_recalced", "restaurant_id", payload.RestaurantID)
	return nil
}

// handleCampaignMetricFlush 累计活动指标
func (c *Consumer) handleCampaignMetricFlush(ctx context.Context, task *asynq.Task) error {
	var payload queue.CampaignMetricFlushPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("campaign_metric_payload_invalid", "error", err)
		return nil
	}
	if payload.CampaignID == 0 || payload.Delta < 1 {
		logger.Debugw("campaign_metric_skipped", "campaign_id", payload.CampaignID, "delta", payload.Delta)
		return nil
	}

	var err error
	switch payload.Metric {
	case "click":
		err = c.CampaignService.AddClicks(payload.CampaignID, payload.Delta)
	default:
		logger.Debugw("campaign_metric_skipped", "reason", "unknown_metric", "metric", payload.Metric)
		return nil
	}
	if err != nil {
		logger.Warnw("campaign_metric_flush_failed", "campaign_id", payload.CampaignID, "error", err)
		return err
	}
	return nil
}
