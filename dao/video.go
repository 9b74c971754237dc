package dao

import (
	"EcomCredits/models"
	"context"

	"gorm.io/gorm"
)

type Video struct {
	Repo[models.Video]
}

func NewVideo(db *gorm.DB) *Video {
	return &Video{
		Repo: NewRepo[models.Video](db),
	}
}

func (v *Video) HasLiked(ctx context.Context, videoID, userID uint64) (bool, error) {
	var count int64
	err := v.Db.WithContext(ctx).Model(&models.VideoLike{}).
		Where("video_id = ? AND user_id = ?", videoID, userID).
		Count(&count).Error
	return count > 0, err
}

func (v *Video) CreateLike(ctx context.Context, videoID, userID uint64) error {
	return v.Db.WithContext(ctx).Create(&models.VideoLike{
		VideoID: videoID,
		UserID:  userID,
	}).Error
}

func (v *Video) IncrLikeCount(ctx context.Context, videoID uint64) error {
	return v.Db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ?", videoID).
		Update("like_count", gorm.Expr("like_count + ?", 1)).Error
}

func (v *Video) IncrShareCount(ctx context.Context, videoID uint64) error {
	return v.Db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ?", videoID).
		Update("share_count", gorm.Expr("share_count + ?", 1)).Error
}

// UpdateReview 落审核结论，只允许从待审核状态流转
func (v *Video) UpdateReview(ctx context.Context, videoID uint64, status int8, reward int64) (int64, error) {
	result := v.Db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ? AND status = ?", videoID, models.VideoStatusPending).
		Updates(map[string]interface{}{
			"status":        status,
			"reward_amount": reward,
		})
	return result.RowsAffected, result.Error
}

// ListApproved 审核通过的视频流，游标分页
func (v *Video) ListApproved(ctx context.Context, cursor uint64, limit int) ([]*models.Video, error) {
	query := v.Db.WithContext(ctx).Where("status = ?", models.VideoStatusApproved)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	var videos []*models.Video
	err := query.Order("id DESC").Limit(limit).Find(&videos).Error
	return videos, err
}
