package service

import (
	"EcomCredits/config"
	"EcomCredits/models"
	"EcomCredits/types"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// txFinder 幂等判断所需的最小流水查询面
type txFinder interface {
	FindBySource(ctx context.Context, userID uint64, sourceID string) (*models.CreditTransaction, error)
}

// RewardService 奖励规则引擎：离散活动事件 -> 一条积分流水
// 规则常量来自配置，事件分发穷举，未知类型直接报错
type RewardService struct {
	Config    *config.Config
	DB        *gorm.DB
	LedgerDAO txFinder
	Ledger    ILedgerService
}

var _ IRewardService = (*RewardService)(nil)

type IRewardService interface {
	ApplyEvent(ctx context.Context, ev *types.RewardEvent) (*models.CreditTransaction, error)
}

// buildTransaction 事件到流水的纯映射，不落库
func buildTransaction(rules *config.Rewards, ev *types.RewardEvent) (*models.CreditTransaction, error) {
	if ev == nil {
		return nil, validationf("奖励事件不能为空")
	}
	if ev.UserID == 0 {
		return nil, validationf("奖励事件缺少用户ID")
	}

	tx := &models.CreditTransaction{
		UserID:   ev.UserID,
		SourceID: ev.SourceID,
		Status:   models.TxStatusCompleted,
	}

	switch ev.Kind {
	case types.RewardSignup:
		tx.Type = models.TxTypeEarned
		tx.Amount = rules.SignupBonus
		tx.Description = "注册奖励"

	case types.RewardReferral:
		tx.Type = models.TxTypeReferral
		tx.Amount = rules.ReferralBonus
		tx.Description = "邀请好友注册奖励"

	case types.RewardVideoLike:
		// 奖励发给点赞的观看者本人，与线上行为保持一致
		tx.Type = models.TxTypeVideo
		tx.Amount = rules.VideoLikeBonus
		tx.Description = "视频点赞奖励"

	case types.RewardVideoShare:
		tx.Type = models.TxTypeVideo
		tx.Amount = rules.VideoShareBonus
		tx.Description = "视频分享奖励"

	case types.RewardVideoUpload:
		// 数额由运营审核给定，引擎只校验区间
		if ev.UploadReward < rules.UploadRewardMin || ev.UploadReward > rules.UploadRewardMax {
			return nil, validationf("投稿奖励 %d 超出区间 [%d, %d]",
				ev.UploadReward, rules.UploadRewardMin, rules.UploadRewardMax)
		}
		tx.Type = models.TxTypeVideo
		tx.Amount = ev.UploadReward
		tx.Status = models.TxStatusApproved
		tx.Description = "视频投稿审核通过奖励"

	case types.RewardPurchaseCash:
		if ev.OrderAmount <= 0 {
			return nil, validationf("订单金额必须大于0")
		}
		percent := ev.CashbackPercent
		if percent == 0 {
			percent = rules.CashbackPercentMin
		}
		if percent < rules.CashbackPercentMin || percent > rules.CashbackPercentMax {
			return nil, validationf("返现比例 %d%% 超出区间 [%d%%, %d%%]",
				percent, rules.CashbackPercentMin, rules.CashbackPercentMax)
		}
		amount := ev.OrderAmount * int64(percent) / 100 // 向下取整
		if amount <= 0 {
			return nil, validationf("订单金额 %d 不足以产生返现", ev.OrderAmount)
		}
		tx.Type = models.TxTypeEarned
		tx.Amount = amount
		tx.Status = models.TxStatusPending
		tx.Description = fmt.Sprintf("购物返现 %d%%", percent)

	case types.RewardRedeemCredits:
		if ev.OrderAmount <= 0 {
			return nil, validationf("订单金额必须大于0")
		}
		// 固定汇率：1 积分抵扣 CreditValue 卢比
		credits := ev.OrderAmount / rules.CreditValue
		if credits <= 0 {
			return nil, validationf("订单金额 %d 低于最小抵扣单位 %d", ev.OrderAmount, rules.CreditValue)
		}
		tx.Type = models.TxTypeSpent
		tx.Amount = credits
		tx.Description = "积分抵扣下单"

	default:
		return nil, &UnknownEventError{Kind: ev.Kind}
	}

	return tx, nil
}

// ApplyEvent 应用一个活动事件，恰好追加一条流水
// 同一业务单号重复提交时返回已有流水，不再追加
func (r *RewardService) ApplyEvent(ctx context.Context, ev *types.RewardEvent) (*models.CreditTransaction, error) {
	tx, err := buildTransaction(r.Config.Rewards, ev)
	if err != nil {
		return nil, err
	}
	if tx.SourceID == "" {
		tx.SourceID = uuid.NewString()
	}

	// 幂等检查
	existing, err := r.LedgerDAO.FindBySource(ctx, tx.UserID, tx.SourceID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return r.Ledger.AppendTransaction(ctx, tx)
}
