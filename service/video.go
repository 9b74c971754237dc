package service

import (
	"EcomCredits/config"
	"EcomCredits/dao"
	"EcomCredits/models"
	"EcomCredits/pkg/snowflake"
	"EcomCredits/types"
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoService 视频投稿与互动，互动触发奖励事件
type VideoService struct {
	Config   *config.Config
	DB       *gorm.DB
	VideoDAO *dao.Video
	Reward   IRewardService
}

var _ IVideoService = (*VideoService)(nil)

type IVideoService interface {
	Upload(ctx context.Context, userID uint64, req *types.UploadVideoReq) (uint64, error)
	Like(ctx context.Context, userID, videoID uint64) (*types.EngageResp, error)
	Share(ctx context.Context, userID, videoID uint64) (*types.EngageResp, error)
	Review(ctx context.Context, videoID uint64, req *types.ReviewVideoReq) error
	Feed(ctx context.Context, cursor uint64, limit int) (*types.VideoFeedResp, error)
}

func (s *VideoService) Upload(ctx context.Context, userID uint64, req *types.UploadVideoReq) (uint64, error) {
	video := &models.Video{
		ID:         snowflake.GenUserID(),
		CreatorID:  userID,
		Title:      req.Title,
		VideoURL:   req.VideoURL,
		CoverImage: req.CoverImage,
		Status:     models.VideoStatusPending,
	}
	if err := s.VideoDAO.Create(ctx, video); err != nil {
		return 0, err
	}
	return video.ID, nil
}

// Like 点赞，奖励发给点赞的观看者本人
// 重复点赞不报错也不再发奖
func (s *VideoService) Like(ctx context.Context, userID, videoID uint64) (*types.EngageResp, error) {
	if _, err := s.VideoDAO.FindByID(ctx, videoID); err != nil {
		return nil, validationf("视频不存在")
	}

	liked, err := s.VideoDAO.HasLiked(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		return &types.EngageResp{Rewarded: false}, nil
	}

	if err := s.VideoDAO.CreateLike(ctx, videoID, userID); err != nil {
		return nil, err
	}
	if err := s.VideoDAO.IncrLikeCount(ctx, videoID); err != nil {
		return nil, err
	}

	tx, err := s.Reward.ApplyEvent(ctx, &types.RewardEvent{
		Kind:     types.RewardVideoLike,
		UserID:   userID,
		VideoID:  videoID,
		SourceID: fmt.Sprintf("video_like:%d:%d", videoID, userID),
	})
	if err != nil {
		return nil, err
	}
	return &types.EngageResp{
		Rewarded:     true,
		RewardAmount: tx.Amount,
		Balance:      tx.Balance,
	}, nil
}

// Share 分享，每次分享都计奖
func (s *VideoService) Share(ctx context.Context, userID, videoID uint64) (*types.EngageResp, error) {
	if _, err := s.VideoDAO.FindByID(ctx, videoID); err != nil {
		return nil, validationf("视频不存在")
	}

	if err := s.VideoDAO.IncrShareCount(ctx, videoID); err != nil {
		return nil, err
	}

	tx, err := s.Reward.ApplyEvent(ctx, &types.RewardEvent{
		Kind:     types.RewardVideoShare,
		UserID:   userID,
		VideoID:  videoID,
		SourceID: fmt.Sprintf("video_share:%d:%d:%s", videoID, userID, uuid.NewString()),
	})
	if err != nil {
		return nil, err
	}
	return &types.EngageResp{
		Rewarded:     true,
		RewardAmount: tx.Amount,
		Balance:      tx.Balance,
	}, nil
}

// Review 运营审核，通过时按给定数额给创作者发投稿奖励
func (s *VideoService) Review(ctx context.Context, videoID uint64, req *types.ReviewVideoReq) error {
	video, err := s.VideoDAO.FindByID(ctx, videoID)
	if err != nil {
		return validationf("视频不存在")
	}

	if !req.Approve {
		rows, err := s.VideoDAO.UpdateReview(ctx, videoID, models.VideoStatusRejected, 0)
		if err != nil {
			return err
		}
		if rows == 0 {
			return validationf("视频不在待审核状态")
		}
		return nil
	}

	rules := s.Config.Rewards
	if req.Reward < rules.UploadRewardMin || req.Reward > rules.UploadRewardMax {
		return validationf("投稿奖励 %d 超出区间 [%d, %d]", req.Reward, rules.UploadRewardMin, rules.UploadRewardMax)
	}

	rows, err := s.VideoDAO.UpdateReview(ctx, videoID, models.VideoStatusApproved, req.Reward)
	if err != nil {
		return err
	}
	if rows == 0 {
		return validationf("视频不在待审核状态")
	}

	_, err = s.Reward.ApplyEvent(ctx, &types.RewardEvent{
		Kind:         types.RewardVideoUpload,
		UserID:       video.CreatorID,
		VideoID:      videoID,
		UploadReward: req.Reward,
		SourceID:     fmt.Sprintf("video_upload:%d", videoID),
	})
	return err
}

func (s *VideoService) Feed(ctx context.Context, cursor uint64, limit int) (*types.VideoFeedResp, error) {
	if limit <= 0 || limit > 20 {
		limit = 10
	}
	videos, err := s.VideoDAO.ListApproved(ctx, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	resp := &types.VideoFeedResp{
		Videos: make([]types.VideoItem, 0),
	}
	if len(videos) > limit {
		resp.HasMore = true
		videos = videos[:limit]
		resp.NextCursor = videos[len(videos)-1].ID
	}
	for _, v := range videos {
		resp.Videos = append(resp.Videos, types.VideoItem{
			ID:         v.ID,
			CreatorID:  v.CreatorID,
			Title:      v.Title,
			CoverImage: v.CoverImage,
			VideoURL:   v.VideoURL,
			LikeCount:  v.LikeCount,
			ShareCount: v.ShareCount,
			ViewCount:  v.ViewCount,
			CreatedAt:  v.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}
