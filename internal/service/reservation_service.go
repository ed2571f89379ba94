package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/constants"
	"github.com/yemeknerede/internal/logger"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/queue"
	"github.com/yemeknerede/internal/repository"

	"gorm.io/gorm"
)

// ReservationService 餐厅预订服务
type ReservationService struct {
	cfg             *config.Config
	reservationRepo repository.ReservationRepository
	restaurantRepo  repository.RestaurantRepository
	queueClient     *queue.Client
}

// NewReservationService 创建预订服务
func NewReservationService(
	cfg *config.Config,
	reservationRepo repository.ReservationRepository,
	restaurantRepo repository.RestaurantRepository,
	queueClient *queue.Client,
) *ReservationService {
	return &ReservationService{
		cfg:             cfg,
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		queueClient:     queueClient,
	}
}

// 占用时段的预订状态
var occupyingStatuses = []string{constants.ReservationStatusPending, constants.ReservationStatusConfirmed}

// CreateReservationParams 预订参数
type CreateReservationParams struct {
	RestaurantID uint
	UserID       uint
	Date         string
	TimeSlot     string
	PartySize    int
	Note         string
}

// Create 创建预订，校验时段与容量
func (s *ReservationService) Create(params CreateReservationParams) (*models.Reservation, error) {
	if params.PartySize < 1 || params.PartySize > 20 {
		return nil, ErrReservationPartyInvalid
	}
	if _, err := time.Parse("2006-01-02", params.Date); err != nil {
		return nil, ErrReservationSlotInvalid
	}
	if !s.isValidSlot(params.TimeSlot) {
		return nil, ErrReservationSlotInvalid
	}
	if _, err := s.restaurantRepo.GetByID(params.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	capacity := s.slotCapacity()
	occupied, err := s.reservationRepo.CountForSlot(params.RestaurantID, params.Date, params.TimeSlot, occupyingStatuses)
	if err != nil {
		return nil, err
	}
	if occupied >= int64(capacity) {
		return nil, ErrReservationSlotFull
	}

	code, err := s.generateCode()
	if err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		Code:         code,
		RestaurantID: params.RestaurantID,
		UserID:       params.UserID,
		Date:         params.Date,
		TimeSlot:     params.TimeSlot,
		PartySize:    params.PartySize,
		Status:       constants.ReservationStatusPending,
		Note:         params.Note,
	}
	if err := s.reservationRepo.Create(reservation); err != nil {
		return nil, err
	}

	s.notify(reservation, "Rezervasyon talebiniz alındı")
	return reservation, nil
}

// SlotAvailability 时段可用性
type SlotAvailability struct {
	TimeSlot  string `json:"time_slot"`
	Available bool   `json:"available"`
	Remaining int64  `json:"remaining"`
}

// Availability 查询指定日期的时段可用性
func (s *ReservationService) Availability(restaurantID uint, date string) ([]SlotAvailability, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrReservationSlotInvalid
	}
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	counts, err := s.reservationRepo.CountBySlots(restaurantID, date, occupyingStatuses)
	if err != nil {
		return nil, err
	}
	occupied := make(map[string]int64, len(counts))
	for _, row := range counts {
		occupied[row.TimeSlot] = row.Count
	}

	capacity := int64(s.slotCapacity())
	slots := s.slots()
	availability := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		remaining := capacity - occupied[slot]
		if remaining < 0 {
			remaining = 0
		}
		availability = append(availability, SlotAvailability{
			TimeSlot:  slot,
			Available: remaining > 0,
			Remaining: remaining,
		})
	}
	return availability, nil
}

// GetForUser 获取用户自己的预订
func (s *ReservationService) GetForUser(id, userID uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if reservation.UserID != userID {
		return nil, ErrReservationNotFound
	}
	return reservation, nil
}

// ListForUser 查询用户预订
func (s *ReservationService) ListForUser(userID uint, page, pageSize int) ([]models.Reservation, int64, error) {
	return s.reservationRepo.List(repository.ReservationListFilter{UserID: userID}, page, pageSize)
}

// List 分页查询预订（后台）
func (s *ReservationService) List(filter repository.ReservationListFilter, page, pageSize int) ([]models.Reservation, int64, error) {
	return s.reservationRepo.List(filter, page, pageSize)
}

// CancelForUser 用户取消预订
func (s *ReservationService) CancelForUser(id, userID uint) (*models.Reservation, error) {
	reservation, err := s.GetForUser(id, userID)
	if err != nil {
		return nil, err
	}
	switch reservation.Status {
	case constants.ReservationStatusPending, constants.ReservationStatusConfirmed:
	default:
		return nil, ErrReservationStatusInvalid
	}

	reservation.Status = constants.ReservationStatusCancelled
	if err := s.reservationRepo.Update(reservation); err != nil {
		return nil, err
	}

	s.notify(reservation, "Rezervasyonunuz iptal edildi")
	return reservation, nil
}

// UpdateStatus 后台更新预订状态
func (s *ReservationService) UpdateStatus(id uint, status string) (*models.Reservation, error) {
	switch status {
	case constants.ReservationStatusPending, constants.ReservationStatusConfirmed,
		constants.ReservationStatusCancelled, constants.ReservationStatusCompleted:
	default:
		return nil, ErrReservationStatusInvalid
	}

	reservation, err := s.reservationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	reservation.Status = status
	if err := s.reservationRepo.Update(reservation); err != nil {
		return nil, err
	}

	if status == constants.ReservationStatusConfirmed {
		s.notify(reservation, "Rezervasyonunuz onaylandı")
	}
	return reservation, nil
}

// slots 按营业时间和间隔生成当日时段
func (s *ReservationService) slots() []string {
	openTime := s.cfg.Reservation.OpenTime
	closeTime := s.cfg.Reservation.CloseTime
	interval := s.cfg.Reservation.SlotMinutes
	if interval < 1 {
		interval = 30
	}

	open, err := time.Parse("15:04", openTime)
	if err != nil {
		open, _ = time.Parse("15:04", "11:00")
	}
	end, err := time.Parse("15:04", closeTime)
	if err != nil {
		end, _ = time.Parse("15:04", "22:30")
	}

	var slots []string
	for t := open; !t.After(end); t = t.Add(time.Duration(interval) * time.Minute) {
		slots = append(slots, t.Format("15:04"))
	}
	return slots
}

func (s *ReservationService) isValidSlot(slot string) bool {
	for _, candidate := range s.slots() {
		if candidate == slot {
			return true
		}
	}
	return false
}

func (s *ReservationService) slotCapacity() int {
	if s.cfg.Reservation.SlotCapacity > 0 {
		return s.cfg.Reservation.SlotCapacity
	}
	return 5
}

func (s *ReservationService) generateCode() (string, error) {
	for i := 0; i < 10; i++ {
		code := constants.ReservationCodePrefix + randomCode(6)
		taken, err := s.reservationRepo.ExistsByCode(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrReservationSlotInvalid
}

func (s *ReservationService) notify(reservation *models.Reservation, title string) {
	if !s.queueClient.Enabled() {
		return
	}
	err := s.queueClient.EnqueueNotificationDispatch(queue.NotificationDispatchPayload{
		UserID: reservation.UserID,
		Type:   constants.NotificationTypeReservation,
		Title:  title,
		Body:   fmt.Sprintf("%s - %s %s (%d kişi)", reservation.Code, reservation.Date, reservation.TimeSlot, reservation.PartySize),
		RefID:  reservation.ID,
	})
	if err != nil {
		logger.Warnw("reservation_notify_enqueue_failed", "reservation_id", reservation.ID, "error", err)
	}
}
