package models

import (
	"time"

	"gorm.io/gorm"
)

// 视频审核状态
const (
	VideoStatusPending  = 0 // 待审核
	VideoStatusApproved = 1 // 审核通过（已发放投稿奖励）
	VideoStatusRejected = 2 // 审核拒绝
)

// Video 用户投稿的短视频
type Video struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	CreatorID    uint64         `gorm:"column:creator_id;index:idx_creator_id"`
	Title        string         `gorm:"column:title;size:255"`
	CoverImage   string         `gorm:"size:512;default:'';column:cover_image"`
	VideoURL     string         `gorm:"size:512;default:'';column:video_url"`
	Status       int8           `gorm:"column:status;default:0;index:idx_video_status"`
	RewardAmount int64          `gorm:"column:reward_amount;default:0"` // 审核通过时运营给定的奖励数额
	LikeCount    uint32         `gorm:"column:like_count;default:0"`
	ShareCount   uint32         `gorm:"column:share_count;default:0"`
	ViewCount    uint32         `gorm:"column:view_count;default:0"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index:idx_videos_deleted_at;column:deleted_at"`
}

func (Video) TableName() string {
	return "videos"
}

// VideoLike 点赞标记，(video, user) 唯一，防止重复领取点赞奖励
type VideoLike struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id"`
	VideoID   uint64    `gorm:"column:video_id;uniqueIndex:idx_video_user"`
	UserID    uint64    `gorm:"column:user_id;uniqueIndex:idx_video_user;index:idx_like_user"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (VideoLike) TableName() string {
	return "video_likes"
}
