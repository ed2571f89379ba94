package service

import (
	"errors"
	"strings"

	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"gorm.io/gorm"
)

// CollectionService 精选合集服务
type CollectionService struct {
	collectionRepo repository.CollectionRepository
	restaurantRepo repository.RestaurantRepository
}

// NewCollectionService 创建合集服务
func NewCollectionService(collectionRepo repository.CollectionRepository, restaurantRepo repository.RestaurantRepository) *CollectionService {
	return &CollectionService{collectionRepo: collectionRepo, restaurantRepo: restaurantRepo}
}

// CollectionView 合集视图，条目已按排序展开为餐厅
type CollectionView struct {
	models.Collection
	Restaurants []models.Restaurant `json:"restaurants"`
}

// ListPublic 查询启用中的合集
func (s *CollectionService) ListPublic(page, pageSize int) ([]models.Collection, int64, error) {
	active := true
	return s.collectionRepo.List(repository.CollectionListFilter{IsActive: &active}, page, pageSize)
}

// GetPublic 按 slug 获取合集并展开餐厅
func (s *CollectionService) GetPublic(slug string) (*CollectionView, error) {
	collection, err := s.collectionRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	if !collection.IsActive {
		return nil, ErrCollectionNotFound
	}
	return s.buildView(collection)
}

// buildView 按条目顺序展开餐厅，跳过下架项
func (s *CollectionService) buildView(collection *models.Collection) (*CollectionView, error) {
	ids := make([]uint, 0, len(collection.Items))
	for _, item := range collection.Items {
		ids = append(ids, item.RestaurantID)
	}
	restaurants, err := s.restaurantRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Restaurant, len(restaurants))
	for i := range restaurants {
		byID[restaurants[i].ID] = &restaurants[i]
	}

	ordered := make([]models.Restaurant, 0, len(ids))
	for _, id := range ids {
		if restaurant, ok := byID[id]; ok && restaurant.IsActive {
			ordered = append(ordered, *restaurant)
		}
	}
	return &CollectionView{Collection: *collection, Restaurants: ordered}, nil
}

// CollectionParams 合集创建/更新参数
type CollectionParams struct {
	Slug          string
	Title         string
	Description   string
	Image         string
	SortOrder     int
	IsActive      bool
	RestaurantIDs []uint
}

// Create 创建合集
func (s *CollectionService) Create(params CollectionParams) (*models.Collection, error) {
	slug := strings.TrimSpace(params.Slug)
	if slug == "" {
		slug = slugify(params.Title)
	}
	taken, err := s.collectionRepo.ExistsBySlug(slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCollectionSlugTaken
	}

	collection := &models.Collection{
		Slug:        slug,
		Title:       params.Title,
		Description: params.Description,
		Image:       params.Image,
		SortOrder:   params.SortOrder,
		IsActive:    params.IsActive,
	}
	if err := s.collectionRepo.Create(collection); err != nil {
		return nil, err
	}
	if len(params.RestaurantIDs) > 0 {
		if err := s.collectionRepo.ReplaceItems(collection.ID, params.RestaurantIDs); err != nil {
			return nil, err
		}
	}
	return s.Get(collection.ID)
}

// Update 更新合集与条目
func (s *CollectionService) Update(id uint, params CollectionParams) (*models.Collection, error) {
	collection, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(params.Slug)
	if slug != "" && slug != collection.Slug {
		taken, err := s.collectionRepo.ExistsBySlug(slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrCollectionSlugTaken
		}
		collection.Slug = slug
	}

	collection.Title = params.Title
	collection.Description = params.Description
	collection.Image = params.Image
	collection.SortOrder = params.SortOrder
	collection.IsActive = params.IsActive

	if err := s.collectionRepo.Update(collection); err != nil {
		return nil, err
	}
	if params.RestaurantIDs != nil {
		if err := s.collectionRepo.ReplaceItems(id, params.RestaurantIDs); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Get 获取合集（后台）
func (s *CollectionService) Get(id uint) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return collection, nil
}

// Delete 删除合集
func (s *CollectionService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.collectionRepo.Delete(id)
}

// List 分页查询合集（后台）
func (s *CollectionService) List(filter repository.CollectionListFilter, page, pageSize int) ([]models.Collection, int64, error) {
	return s.collectionRepo.List(filter, page, pageSize)
}
