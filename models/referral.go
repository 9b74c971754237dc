package models

import "time"

// Referral 邀请关系，一条记录对应一次成功的受邀注册
// 奖励发放以 (referrer, referred) 唯一约束保证一人一次
type Referral struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	ReferrerID uint64    `gorm:"column:referrer_id;index:idx_referrer_id;uniqueIndex:idx_referrer_referred"`
	ReferredID uint64    `gorm:"column:referred_id;uniqueIndex:idx_referrer_referred"`
	Code       string    `gorm:"column:code;size:32"` // 注册时使用的邀请码
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Referral) TableName() string {
	return "referrals"
}
