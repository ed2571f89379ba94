package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/yemeknerede/internal/models"
)

// 认证状态快照缓存有效期
const authStateCacheTTL = 10 * time.Minute

// AdminAuthState 管理员认证状态快照
type AdminAuthState struct {
	ID                 uint   `json:"id"`
	Username           string `json:"username"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	IsSuper            bool   `json:"is_super"`
}

// UserAuthState 用户认证状态快照
type UserAuthState struct {
	ID                 uint   `json:"id"`
	Email              string `json:"email"`
	Status             string `json:"status"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
}

// BuildAdminAuthState 从管理员模型构建快照
func BuildAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	state := &AdminAuthState{
		ID:           admin.ID,
		Username:     admin.Username,
		TokenVersion: admin.TokenVersion,
		IsSuper:      admin.IsSuper,
	}
	if admin.TokenInvalidBefore != nil {
		state.TokenInvalidBefore = admin.TokenInvalidBefore.Unix()
	}
	return state
}

// BuildUserAuthState 从用户模型构建快照
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	state := &UserAuthState{
		ID:           user.ID,
		Email:        user.Email,
		Status:       user.Status,
		TokenVersion: user.TokenVersion,
	}
	if user.TokenInvalidBefore != nil {
		state.TokenInvalidBefore = user.TokenInvalidBefore.Unix()
	}
	return state
}

func adminAuthStateKey(adminID uint) string {
	return buildKey("auth", "admin", fmt.Sprintf("%d", adminID))
}

func userAuthStateKey(userID uint) string {
	return buildKey("auth", "user", fmt.Sprintf("%d", userID))
}

// GetAdminAuthState 读取管理员认证快照
func GetAdminAuthState(ctx context.Context, adminID uint) (*AdminAuthState, bool) {
	var state AdminAuthState
	ok, err := GetJSON(ctx, adminAuthStateKey(adminID), &state)
	if err != nil || !ok {
		return nil, false
	}
	return &state, true
}

// SetAdminAuthState 写入管理员认证快照
func SetAdminAuthState(ctx context.Context, state *AdminAuthState) {
	if state == nil {
		return
	}
	_ = SetJSON(ctx, adminAuthStateKey(state.ID), state, authStateCacheTTL)
}

// DelAdminAuthState 删除管理员认证快照
func DelAdminAuthState(ctx context.Context, adminID uint) {
	Del(ctx, adminAuthStateKey(adminID))
}

// GetUserAuthState 读取用户认证快照
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool) {
	var state UserAuthState
	ok, err := GetJSON(ctx, userAuthStateKey(userID), &state)
	if err != nil || !ok {
		return nil, false
	}
	return &state, true
}

// SetUserAuthState 写入用户认证快照
func SetUserAuthState(ctx context.Context, state *UserAuthState) {
	if state == nil {
		return
	}
	_ = SetJSON(ctx, userAuthStateKey(state.ID), state, authStateCacheTTL)
}

// DelUserAuthState 删除用户认证快照
func DelUserAuthState(ctx context.Context, userID uint) {
	Del(ctx, userAuthStateKey(userID))
}
