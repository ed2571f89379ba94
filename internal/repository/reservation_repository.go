package repository

import (
	"github.com/yemeknerede/internal/models"
	"gorm.io/gorm"
)

// ReservationRepository 预订仓储接口
type ReservationRepository interface {
	Create(reservation *models.Reservation) error
	GetByID(id uint) (*models.Reservation, error)
	GetByCode(code string) (*models.Reservation, error)
	Update(reservation *models.Reservation) error
	List(filter ReservationListFilter, page, pageSize int) ([]models.Reservation, int64, error)
	CountForSlot(restaurantID uint, date, timeSlot string, statuses []string) (int64, error)
	CountBySlots(restaurantID uint, date string, statuses []string) ([]SlotCount, error)
	CountAll() (int64, error)
	ExistsByCode(code string) (bool, error)
	WithTx(tx *gorm.DB) ReservationRepository
}

// GormReservationRepository 预订仓储实现
type GormReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository 创建预订仓储
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &GormReservationRepository{db: db}
}

// WithTx 返回使用事务连接的仓储
func (r *GormReservationRepository) WithTx(tx *gorm.DB) ReservationRepository {
	return &GormReservationRepository{db: tx}
}

func (r *GormReservationRepository) Create(reservation *models.Reservation) error {
	return r.db.Create(reservation).Error
}

func (r *GormReservationRepository) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *GormReservationRepository) GetByCode(code string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.Where("code = ?", code).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *GormReservationRepository) Update(reservation *models.Reservation) error {
	return r.db.Save(reservation).Error
}

func (r *GormReservationRepository) List(filter ReservationListFilter, page, pageSize int) ([]models.Reservation, int64, error) {
	query := r.db.Model(&models.Reservation{})
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.RestaurantID > 0 {
		query = query.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []models.Reservation
	if err := applyPagination(query, page, pageSize).Order("id desc").Find(&reservations).Error; err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// CountForSlot 统计同一餐厅同一时段的占用数量
func (r *GormReservationRepository) CountForSlot(restaurantID uint, date, timeSlot string, statuses []string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Reservation{}).
		Where("restaurant_id = ? AND date = ? AND time_slot = ? AND status IN ?", restaurantID, date, timeSlot, statuses).
		Count(&count).Error
	return count, err
}

// CountBySlots 按时段聚合一天内的占用数量
func (r *GormReservationRepository) CountBySlots(restaurantID uint, date string, statuses []string) ([]SlotCount, error) {
	var rows []SlotCount
	err := r.db.Model(&models.Reservation{}).
		Select("time_slot, COUNT(*) as count").
		Where("restaurant_id = ? AND date = ? AND status IN ?", restaurantID, date, statuses).
		Group("time_slot").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormReservationRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Reservation{}).Count(&count).Error
	return count, err
}

func (r *GormReservationRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Reservation{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
