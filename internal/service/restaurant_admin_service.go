package service

import (
	"fmt"
	"strings"

	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"gorm.io/gorm"
)

// RestaurantAdminService 餐厅后台管理服务
type RestaurantAdminService struct {
	db             *gorm.DB
	restaurantRepo repository.RestaurantRepository
	menuItemRepo   repository.MenuItemRepository
	reviewRepo     repository.ReviewRepository
}

// NewRestaurantAdminService 创建餐厅管理服务
func NewRestaurantAdminService(db *gorm.DB, restaurantRepo repository.RestaurantRepository, menuItemRepo repository.MenuItemRepository, reviewRepo repository.ReviewRepository) *RestaurantAdminService {
	return &RestaurantAdminService{db: db, restaurantRepo: restaurantRepo, menuItemRepo: menuItemRepo, reviewRepo: reviewRepo}
}

// RestaurantParams 餐厅创建/更新参数
type RestaurantParams struct {
	Slug            string
	Name            string
	Description     string
	Cuisine         string
	PriceRange      string
	Address         string
	City            string
	District        string
	Lat             float64
	Lng             float64
	Phone           string
	Image           string
	DeliveryTime    string
	DeliveryFee     models.Money
	MinOrder        models.Money
	DeliveryRadius  float64
	Tags            []string
	Amenities       []string
	SpecialFeatures []string
	Atmosphere      []string
	DietaryOptions  []string
	Discount        string
	IsOpen          bool
	IsActive        bool
	Featured        bool
}

// Create 创建餐厅，未提供 slug 时按名称和城市生成
func (s *RestaurantAdminService) Create(params RestaurantParams) (*models.Restaurant, error) {
	slug := strings.TrimSpace(params.Slug)
	if slug == "" {
		generated, err := s.generateSlug(params.Name, params.City)
		if err != nil {
			return nil, err
		}
		slug = generated
	} else {
		taken, err := s.restaurantRepo.ExistsBySlug(slug, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}

	restaurant := &models.Restaurant{
		Slug:            slug,
		Name:            params.Name,
		Description:     params.Description,
		Cuisine:         params.Cuisine,
		PriceRange:      params.PriceRange,
		Address:         params.Address,
		City:            params.City,
		District:        params.District,
		Lat:             params.Lat,
		Lng:             params.Lng,
		Phone:           params.Phone,
		Image:           params.Image,
		DeliveryTime:    params.DeliveryTime,
		DeliveryFee:     params.DeliveryFee,
		MinOrder:        params.MinOrder,
		DeliveryRadius:  params.DeliveryRadius,
		Tags:            params.Tags,
		Amenities:       params.Amenities,
		SpecialFeatures: params.SpecialFeatures,
		Atmosphere:      params.Atmosphere,
		DietaryOptions:  params.DietaryOptions,
		Discount:        params.Discount,
		IsOpen:          params.IsOpen,
		IsActive:        params.IsActive,
		Featured:        params.Featured,
	}
	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Update 更新餐厅
func (s *RestaurantAdminService) Update(id uint, params RestaurantParams) (*models.Restaurant, error) {
	restaurant, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(params.Slug)
	if slug != "" && slug != restaurant.Slug {
		taken, err := s.restaurantRepo.ExistsBySlug(slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
		restaurant.Slug = slug
	}

	restaurant.Name = params.Name
	restaurant.Description = params.Description
	restaurant.Cuisine = params.Cuisine
	restaurant.PriceRange = params.PriceRange
	restaurant.Address = params.Address
	restaurant.City = params.City
	restaurant.District = params.District
	restaurant.Lat = params.Lat
	restaurant.Lng = params.Lng
	restaurant.Phone = params.Phone
	restaurant.Image = params.Image
	restaurant.DeliveryTime = params.DeliveryTime
	restaurant.DeliveryFee = params.DeliveryFee
	restaurant.MinOrder = params.MinOrder
	restaurant.DeliveryRadius = params.DeliveryRadius
	restaurant.Tags = params.Tags
	restaurant.Amenities = params.Amenities
	restaurant.SpecialFeatures = params.SpecialFeatures
	restaurant.Atmosphere = params.Atmosphere
	restaurant.DietaryOptions = params.DietaryOptions
	restaurant.Discount = params.Discount
	restaurant.IsOpen = params.IsOpen
	restaurant.IsActive = params.IsActive
	restaurant.Featured = params.Featured

	if err := s.restaurantRepo.Update(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Get 获取餐厅
func (s *RestaurantAdminService) Get(id uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		return nil, ErrRestaurantNotFound
	}
	return restaurant, nil
}

// Delete 删除餐厅，菜单与评价一并软删除
func (s *RestaurantAdminService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.menuItemRepo.WithTx(tx).DeleteByRestaurant(id); err != nil {
			return err
		}
		if err := s.reviewRepo.WithTx(tx).DeleteByRestaurant(id); err != nil {
			return err
		}
		return s.restaurantRepo.WithTx(tx).Delete(id)
	})
}

// List 分页查询餐厅
func (s *RestaurantAdminService) List(filter repository.RestaurantListFilter, page, pageSize int) ([]models.Restaurant, int64, error) {
	return s.restaurantRepo.List(filter, page, pageSize)
}

// generateSlug 由名称和城市生成唯一 slug
func (s *RestaurantAdminService) generateSlug(name, city string) (string, error) {
	base := slugify(name + "-" + city)
	if base == "" {
		base = "restoran"
	}
	slug := base
	for i := 0; i < 20; i++ {
		taken, err := s.restaurantRepo.ExistsBySlug(slug, 0)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i+2)
	}
	return "", ErrSlugTaken
}

// slugify 转为小写连字符形式，土耳其语字符按惯例转写
var turkishReplacer = strings.NewReplacer(
	"ı", "i", "İ", "i", "ş", "s", "Ş", "s",
	"ğ", "g", "Ğ", "g", "ü", "u", "Ü", "u",
	"ö", "o", "Ö", "o", "ç", "c", "Ç", "c",
)

func slugify(input string) string {
	normalized := strings.ToLower(turkishReplacer.Replace(strings.TrimSpace(input)))
	var b strings.Builder
	lastDash := true
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
