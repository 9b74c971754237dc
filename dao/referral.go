package dao

import (
	"EcomCredits/models"
	"context"

	"gorm.io/gorm"
)

type Referral struct {
	Repo[models.Referral]
}

func NewReferral(db *gorm.DB) *Referral {
	return &Referral{
		Repo: NewRepo[models.Referral](db),
	}
}

// ExistsByReferred 受邀人是否已经绑定过邀请关系
func (r *Referral) ExistsByReferred(ctx context.Context, referredID uint64) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&models.Referral{}).
		Where("referred_id = ?", referredID).
		Count(&count).Error
	return count > 0, err
}

func (r *Referral) CountByReferrer(ctx context.Context, referrerID uint64) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&models.Referral{}).
		Where("referrer_id = ?", referrerID).
		Count(&count).Error
	return count, err
}
