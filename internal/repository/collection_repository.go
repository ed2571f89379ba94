package repository

import (
	"github.com/yemeknerede/internal/models"
	"gorm.io/gorm"
)

// CollectionRepository 合集仓储接口
type CollectionRepository interface {
	Create(collection *models.Collection) error
	GetByID(id uint) (*models.Collection, error)
	GetBySlug(slug string) (*models.Collection, error)
	Update(collection *models.Collection) error
	Delete(id uint) error
	List(filter CollectionListFilter, page, pageSize int) ([]models.Collection, int64, error)
	ExistsBySlug(slug string, excludeID uint) (bool, error)
	ReplaceItems(collectionID uint, restaurantIDs []uint) error
	WithTx(tx *gorm.DB) CollectionRepository
}

// GormCollectionRepository 合集仓储实现
type GormCollectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository 创建合集仓储
func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &GormCollectionRepository{db: db}
}

// WithTx 返回使用事务连接的仓储
func (r *GormCollectionRepository) WithTx(tx *gorm.DB) CollectionRepository {
	return &GormCollectionRepository{db: tx}
}

func (r *GormCollectionRepository) Create(collection *models.Collection) error {
	return r.db.Create(collection).Error
}

func (r *GormCollectionRepository) GetByID(id uint) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc, id asc")
	}).First(&collection, id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *GormCollectionRepository) GetBySlug(slug string) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc, id asc")
	}).Where("slug = ?", slug).First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *GormCollectionRepository) Update(collection *models.Collection) error {
	return r.db.Save(collection).Error
}

func (r *GormCollectionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&models.CollectionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Collection{}, id).Error
	})
}

func (r *GormCollectionRepository) List(filter CollectionListFilter, page, pageSize int) ([]models.Collection, int64, error) {
	query := r.db.Model(&models.Collection{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var collections []models.Collection
	if err := applyPagination(query, page, pageSize).Order("sort_order asc, id desc").Find(&collections).Error; err != nil {
		return nil, 0, err
	}
	return collections, total, nil
}

func (r *GormCollectionRepository) ExistsBySlug(slug string, excludeID uint) (bool, error) {
	query := r.db.Model(&models.Collection{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReplaceItems 覆盖式更新合集条目
func (r *GormCollectionRepository) ReplaceItems(collectionID uint, restaurantIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", collectionID).Delete(&models.CollectionItem{}).Error; err != nil {
			return err
		}
		for i, restaurantID := range restaurantIDs {
			item := models.CollectionItem{
				CollectionID: collectionID,
				RestaurantID: restaurantID,
				SortOrder:    i,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
