package service

import (
	"EcomCredits/config"
	"EcomCredits/dao"
	"EcomCredits/models"
	"EcomCredits/pkg/utils"
	"EcomCredits/types"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ReferralService 邀请码的签发与兑现
// 一次成功的受邀注册给邀请人发一次奖励，(referrer, referred) 唯一约束兜底
type ReferralService struct {
	Config      *config.Config
	DB          *gorm.DB
	ReferralDAO *dao.Referral
	UserDAO     *dao.User
	Reward      IRewardService
}

var _ IReferralService = (*ReferralService)(nil)

type IReferralService interface {
	IssueCode(userID uint64) string
	CompleteReferral(ctx context.Context, code string, referredID uint64) error
	GetStats(ctx context.Context, userID uint64) (*types.ReferralStatsResp, error)
}

// IssueCode 注册完成后生成对外分享的邀请码
func (s *ReferralService) IssueCode(userID uint64) string {
	return utils.GenReferralCode(s.Config.App.ReferralSalt, userID)
}

// CompleteReferral 受邀注册完成：绑定关系并给邀请人发奖
func (s *ReferralService) CompleteReferral(ctx context.Context, code string, referredID uint64) error {
	referrerID := utils.DecodeReferralCode(s.Config.App.ReferralSalt, code)
	if referrerID == 0 {
		return validationf("邀请码无效")
	}
	if referrerID == referredID {
		return validationf("不能使用自己的邀请码")
	}
	if _, err := s.UserDAO.FindByID(ctx, referrerID); err != nil {
		return validationf("邀请人不存在")
	}

	exists, err := s.ReferralDAO.ExistsByReferred(ctx, referredID)
	if err != nil {
		return err
	}
	if exists {
		return validationf("该用户已绑定过邀请关系")
	}

	if err := s.ReferralDAO.Create(ctx, &models.Referral{
		ReferrerID: referrerID,
		ReferredID: referredID,
		Code:       code,
	}); err != nil {
		return err
	}

	_, err = s.Reward.ApplyEvent(ctx, &types.RewardEvent{
		Kind:     types.RewardReferral,
		UserID:   referrerID,
		SourceID: fmt.Sprintf("referral:%d", referredID),
	})
	return err
}

func (s *ReferralService) GetStats(ctx context.Context, userID uint64) (*types.ReferralStatsResp, error) {
	user, err := s.UserDAO.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	count, err := s.ReferralDAO.CountByReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.ReferralStatsResp{
		Code:          user.ReferralCode,
		ReferredCount: count,
		TotalEarned:   count * s.Config.Rewards.ReferralBonus,
	}, nil
}
