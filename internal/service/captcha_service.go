package service

import (
	"image/color"
	"time"

	"github.com/yemeknerede/internal/config"

	"github.com/mojocn/base64Captcha"
)

// CaptchaService 图形验证码服务
type CaptchaService struct {
	cfg     config.CaptchaConfig
	captcha *base64Captcha.Captcha
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	if !cfg.Enabled {
		return &CaptchaService{cfg: cfg}
	}

	length := cfg.Length
	if length < 1 {
		length = 5
	}
	width := cfg.Width
	if width < 1 {
		width = 240
	}
	height := cfg.Height
	if height < 1 {
		height = 80
	}

	driver := base64Captcha.NewDriverString(
		height, width, cfg.NoiseCount, cfg.ShowLine, length,
		base64Captcha.TxtNumbers+base64Captcha.TxtAlphabet,
		&color.RGBA{R: 254, G: 254, B: 254, A: 254},
		nil, nil,
	)
	store := base64Captcha.NewMemoryStore(captchaMaxStore(cfg), captchaExpire(cfg))
	return &CaptchaService{
		cfg:     cfg,
		captcha: base64Captcha.NewCaptcha(driver, store),
	}
}

// Enabled 判断验证码是否启用
func (s *CaptchaService) Enabled() bool {
	return s != nil && s.cfg.Enabled && s.captcha != nil
}

// Generate 生成验证码，返回 id 和 base64 图片
func (s *CaptchaService) Generate() (id, b64 string, err error) {
	if !s.Enabled() {
		return "", "", ErrCaptchaInvalid
	}
	id, b64, _, err = s.captcha.Generate()
	return id, b64, err
}

// Verify 校验验证码，未启用时直接通过
func (s *CaptchaService) Verify(id, answer string) error {
	if !s.Enabled() {
		return nil
	}
	if id == "" || answer == "" {
		return ErrCaptchaRequired
	}
	if !s.captcha.Verify(id, answer, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func captchaMaxStore(cfg config.CaptchaConfig) int {
	if cfg.MaxStore > 0 {
		return cfg.MaxStore
	}
	return base64Captcha.GCLimitNumber
}

func captchaExpire(cfg config.CaptchaConfig) time.Duration {
	if cfg.ExpireSeconds > 0 {
		return time.Duration(cfg.ExpireSeconds) * time.Second
	}
	return base64Captcha.Expiration
}
