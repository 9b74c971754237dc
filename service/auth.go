package service

import (
	"EcomCredits/config"
	"EcomCredits/dao"
	"EcomCredits/models"
	"EcomCredits/pkg/jwt"
	"EcomCredits/pkg/log"
	"EcomCredits/pkg/snowflake"
	"EcomCredits/types"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService 注册/登录，注册完成触发注册奖励与邀请兑现
type AuthService struct {
	Config   *config.Config
	DB       *gorm.DB
	UserDAO  *dao.User
	Referral IReferralService
	Reward   IRewardService
}

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterReq) (*types.AuthResp, error)
	Login(ctx context.Context, req *types.LoginReq) (*types.AuthResp, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterReq) (*types.AuthResp, error) {
	exists, err := s.UserDAO.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, validationf("邮箱已被注册")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           snowflake.GenUserID(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Nickname:     req.Nickname,
		ReferredBy:   req.ReferralCode,
	}
	user.ReferralCode = s.Referral.IssueCode(user.ID)

	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	// 注册奖励，一次性
	bonusTx, err := s.Reward.ApplyEvent(ctx, &types.RewardEvent{
		Kind:     types.RewardSignup,
		UserID:   user.ID,
		SourceID: fmt.Sprintf("signup:%d", user.ID),
	})
	if err != nil {
		return nil, err
	}

	// 邀请兑现失败不阻断注册
	if req.ReferralCode != "" {
		if err := s.Referral.CompleteReferral(ctx, req.ReferralCode, user.ID); err != nil {
			log.L.Warn("complete referral failed",
				zap.Uint64("userID", user.ID),
				zap.String("code", req.ReferralCode),
				zap.Error(err))
		}
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &types.AuthResp{
		UserID:       user.ID,
		Nickname:     user.Nickname,
		ReferralCode: user.ReferralCode,
		SignupBonus:  bonusTx.Amount,
		TokenPair:    *tokens,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginReq) (*types.AuthResp, error) {
	user, err := s.UserDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, validationf("邮箱或密码错误")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, validationf("邮箱或密码错误")
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &types.AuthResp{
		UserID:       user.ID,
		Nickname:     user.Nickname,
		ReferralCode: user.ReferralCode,
		TokenPair:    *tokens,
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), "refresh", refreshToken)
	if err != nil {
		return nil, validationf("refresh token 无效")
	}
	return s.issueTokens(claims.UserID)
}

func (s *AuthService) issueTokens(userID uint64) (*types.TokenPair, error) {
	secret := []byte(s.Config.Jwt.Secret)
	access, err := jwt.GenerateToken(secret, userID, "access", time.Duration(s.Config.Jwt.AccessExpire)*time.Second)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, userID, "refresh", time.Duration(s.Config.Jwt.RefreshExpire)*time.Second)
	if err != nil {
		return nil, err
	}
	return &types.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
