package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yemeknerede/internal/cache"
	"github.com/yemeknerede/internal/config"
	"github.com/yemeknerede/internal/constants"
	"github.com/yemeknerede/internal/models"
	"github.com/yemeknerede/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// UserAuthService 用户注册登录与账户服务
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{cfg: cfg, userRepo: userRepo}
}

// UserJWTClaims 用户令牌声明
type UserJWTClaims struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// RegisterParams 注册参数
type RegisterParams struct {
	Email    string
	Password string
	FullName string
	Phone    string
	City     string
	Locale   string
}

// Register 注册新用户
func (s *UserAuthService) Register(params RegisterParams) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if err := ValidatePassword(params.Password, s.cfg.Security.PasswordPolicy); err != nil {
		return nil, err
	}

	taken, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	locale := params.Locale
	if !isSupportedLocale(locale) {
		locale = constants.LocaleTrTR
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(params.FullName),
		Phone:        strings.TrimSpace(params.Phone),
		City:         strings.TrimSpace(params.City),
		Locale:       locale,
		Status:       constants.UserStatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 用户登录
func (s *UserAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !VerifyPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	if user.Status != constants.UserStatusActive {
		return nil, "", ErrUserDisabled
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", err
	}

	cache.SetUserAuthState(ctx, cache.BuildUserAuthState(user))
	return user, token, nil
}

// GenerateJWT 为用户签发令牌
func (s *UserAuthService) GenerateJWT(user *models.User) (string, error) {
	expireHours := s.cfg.UserJWT.ExpireHours
	if expireHours < 1 {
		expireHours = 168
	}
	now := time.Now()
	claims := UserJWTClaims{
		UserID:       user.ID,
		Email:        user.Email,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.UserJWT.SecretKey))
}

// ParseJWT 解析并校验用户令牌
func (s *UserAuthService) ParseJWT(tokenString string) (*UserJWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserJWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.UserJWT.SecretKey), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*UserJWTClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// GetUser 获取用户信息
func (s *UserAuthService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfileParams 资料更新参数
type UpdateProfileParams struct {
	FullName *string
	Phone    *string
	City     *string
	Locale   *string
}

// UpdateProfile 更新用户资料
func (s *UserAuthService) UpdateProfile(userID uint, params UpdateProfileParams) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if params.FullName != nil {
		user.FullName = strings.TrimSpace(*params.FullName)
	}
	if params.Phone != nil {
		user.Phone = strings.TrimSpace(*params.Phone)
	}
	if params.City != nil {
		user.City = strings.TrimSpace(*params.City)
	}
	if params.Locale != nil && isSupportedLocale(*params.Locale) {
		user.Locale = *params.Locale
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword 修改用户密码并吊销存量令牌
func (s *UserAuthService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(user.PasswordHash, oldPassword) {
		return ErrInvalidCredentials
	}
	if err := ValidatePassword(newPassword, s.cfg.Security.PasswordPolicy); err != nil {
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	user.PasswordHash = hash
	user.TokenVersion++
	user.TokenInvalidBefore = &now
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	cache.DelUserAuthState(ctx, user.ID)
	return nil
}

// AddressParams 地址参数
type AddressParams struct {
	Label     string
	Address   string
	City      string
	District  string
	Lat       float64
	Lng       float64
	IsDefault bool
}

// CreateAddress 新增收货地址
func (s *UserAuthService) CreateAddress(userID uint, params AddressParams) (*models.UserAddress, error) {
	if params.IsDefault {
		if err := s.userRepo.ClearDefaultAddress(userID); err != nil {
			return nil, err
		}
	}
	address := &models.UserAddress{
		UserID:    userID,
		Label:     strings.TrimSpace(params.Label),
		Address:   strings.TrimSpace(params.Address),
		City:      strings.TrimSpace(params.City),
		District:  strings.TrimSpace(params.District),
		Lat:       params.Lat,
		Lng:       params.Lng,
		IsDefault: params.IsDefault,
	}
	if err := s.userRepo.CreateAddress(address); err != nil {
		return nil, err
	}
	return address, nil
}

// ListAddresses 查询用户地址列表
func (s *UserAuthService) ListAddresses(userID uint) ([]models.UserAddress, error) {
	return s.userRepo.ListAddresses(userID)
}

// DeleteAddress 删除收货地址
func (s *UserAuthService) DeleteAddress(id, userID uint) error {
	ok, err := s.userRepo.DeleteAddress(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAddressNotFound
	}
	return nil
}

func isSupportedLocale(locale string) bool {
	for _, supported := range constants.SupportedLocales {
		if locale == supported {
			return true
		}
	}
	return false
}
