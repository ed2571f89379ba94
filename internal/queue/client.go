// Package queue 封装 asynq 任务入队
package queue

import (
	"fmt"

	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/constants"
	"github.com/yemeknerede/internal/logger"

	"github.com/hibiken/asynq"
)

// Client 任务队列客户端
type Client struct {
	client       *asynq.Client
	defaultQueue string
	enabled      bool
}

// NewClient 创建任务队列客户端，队列未启用时返回降级实例
func NewClient(cfg config.QueueConfig) *Client {
	if !cfg.Enabled {
		logger.Infow("queue_disabled")
		return &Client{enabled: false, defaultQueue: constants.QueueDefault}
	}
	return &Client{
		client:       asynq.NewClient(buildRedisOpt(cfg)),
		defaultQueue: constants.QueueDefault,
		enabled:      true,
	}
}

// Enabled 判断队列是否可用
func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Close 关闭队列连接
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

func (c *Client) enqueue(task *asynq.Task, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	allOpts := append([]asynq.Option{asynq.Queue(c.defaultQueue)}, opts...)
	info, err := c.client.Enqueue(task, allOpts...)
	if err != nil {
		return err
	}
	logger.Debugw("task_enqueued", "task_id", info.ID, "type", task.Type(), "queue", info.Queue)
	return nil
}

// EnqueueNotificationDispatch 投递通知任务
func (c *Client) EnqueueNotificationDispatch(payload NotificationDispatchPayload, opts ...asynq.Option) error {
	task, err := NewNotificationDispatchTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(task, opts...)
}

// EnqueueRestaurantRatingRecalc 投递评分重算任务
func (c *Client) EnqueueRestaurantRatingRecalc(payload RestaurantRatingRecalcPayload, opts ...asynq.Option) error {
	task, err := NewRestaurantRatingRecalcTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(task, opts...)
}

// EnqueueCampaignMetricFlush 投递活动指标任务
func (c *Client) EnqueueCampaignMetricFlush(payload CampaignMetricFlushPayload, opts ...asynq.Option) error {
	task, err := NewCampaignMetricFlushTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(task, opts...)
}

// BuildServerConfig 构建 worker 端 asynq 配置
func BuildServerConfig(cfg config.QueueConfig) asynq.Config {
	queues := cfg.Queues
	if len(queues) == 0 {
		queues = map[string]int{constants.QueueDefault: 10}
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 10
	}
	return asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

// BuildRedisOpt 构建队列 Redis 连接参数
func BuildRedisOpt(cfg config.QueueConfig) asynq.RedisClientOpt {
	return buildRedisOpt(cfg)
}

func buildRedisOpt(cfg config.QueueConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}
