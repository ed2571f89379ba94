package service

import (
	"errors"

	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"gorm.io/gorm"
)

// MenuService 菜单服务
type MenuService struct {
	menuItemRepo   repository.MenuItemRepository
	restaurantRepo repository.RestaurantRepository
}

// NewMenuService 创建菜单服务
func NewMenuService(menuItemRepo repository.MenuItemRepository, restaurantRepo repository.RestaurantRepository) *MenuService {
	return &MenuService{menuItemRepo: menuItemRepo, restaurantRepo: restaurantRepo}
}

// ListForRestaurant 查询餐厅菜单，可按分类过滤
func (s *MenuService) ListForRestaurant(restaurantID uint, category string, availableOnly bool) ([]models.MenuItem, error) {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	filter := repository.MenuItemListFilter{
		RestaurantID: restaurantID,
		Category:     category,
	}
	if availableOnly {
		available := true
		filter.IsAvailable = &available
	}
	return s.menuItemRepo.List(filter)
}

// MenuItemParams 菜单项创建/更新参数
type MenuItemParams struct {
	RestaurantID uint
	Name         string
	Description  string
	Category     string
	Price        models.Money
	Image        string
	IsAvailable  bool
	IsPopular    bool
	SortOrder    int
}

// Create 新增菜单项
func (s *MenuService) Create(params MenuItemParams) (*models.MenuItem, error) {
	if _, err := s.restaurantRepo.GetByID(params.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	item := &models.MenuItem{
		RestaurantID: params.RestaurantID,
		Name:         params.Name,
		Description:  params.Description,
		Category:     params.Category,
		Price:        params.Price,
		Image:        params.Image,
		IsAvailable:  params.IsAvailable,
		IsPopular:    params.IsPopular,
		SortOrder:    params.SortOrder,
	}
	if err := s.menuItemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update 更新菜单项
func (s *MenuService) Update(id uint, params MenuItemParams) (*models.MenuItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Name = params.Name
	item.Description = params.Description
	item.Category = params.Category
	item.Price = params.Price
	item.Image = params.Image
	item.IsAvailable = params.IsAvailable
	item.IsPopular = params.IsPopular
	item.SortOrder = params.SortOrder

	if err := s.menuItemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get 获取菜单项
func (s *MenuService) Get(id uint) (*models.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete 删除菜单项
func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.menuItemRepo.Delete(id)
}
