package service

import (
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"
)

// NotificationService 用户通知服务
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService 创建通知服务
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List 查询用户通知
func (s *NotificationService) List(userID uint, unreadOnly bool, limit int) ([]models.Notification, error) {
	return s.notificationRepo.ListByUser(userID, unreadOnly, limit)
}

// UnreadCount 查询未读数量
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

// MarkRead 标记单条通知已读
func (s *NotificationService) MarkRead(id, userID uint) error {
	ok, err := s.notificationRepo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead 标记全部通知已读，返回影响条数
func (s *NotificationService) MarkAllRead(userID uint) (int64, error) {
	return s.notificationRepo.MarkAllRead(userID)
}

// DispatchParams 通知投递参数
type DispatchParams struct {
	UserID uint
	Type   string
	Title  string
	Body   string
	RefID  uint
}

// Dispatch 落库一条通知，供任务消费侧调用
func (s *NotificationService) Dispatch(params DispatchParams) (*models.Notification, error) {
	notification := &models.Notification{
		UserID: params.UserID,
		Type:   params.Type,
		Title:  params.Title,
		Body:   params.Body,
		RefID:  params.RefID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}
