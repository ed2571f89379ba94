package worker

import (
	"context"
	"errors"

	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/logger"
	"github.com/yemeknerede/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 任务消费服务
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewService 创建任务消费服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("queue config is nil")
	}
	if !cfg.Enabled {
		return nil, errors.New("queue is disabled")
	}

	server := asynq.NewServer(queue.BuildRedisOpt(*cfg), queue.BuildServerConfig(*cfg))
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{server: server, mux: mux}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	return "worker"
}

// Start 启动任务消费
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("worker server not initialized")
	}
	logger.Infow("worker_starting")
	return s.server.Run(s.mux)
}

// Stop 停止任务消费
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}
