package models

import "time"

// User 注册用户，ReferralCode 在注册完成后由 hashid 生成
type User struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	Email        string    `gorm:"column:email;uniqueIndex;size:128"`
	PasswordHash string    `gorm:"column:password_hash;size:128"`
	Nickname     string    `gorm:"column:nickname;size:64"`
	ReferralCode string    `gorm:"column:referral_code;uniqueIndex;size:32"` // 对外分享的邀请码
	ReferredBy   string    `gorm:"column:referred_by;size:32;default:''"`    // 注册时填写的他人邀请码
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
