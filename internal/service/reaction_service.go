package service

import (
	"Daybook/internal/api/dto"
	"Daybook/internal/model"
	"Daybook/internal/pkg/consts"
	"Daybook/internal/repository"
	"context"
	log "log/slog"
)

type ReactionService interface {
	GetUserReaction(ctx context.Context, userID string, target model.ReactionTarget) (string, error)
	SetUserReaction(ctx context.Context, userID string, target model.ReactionTarget, reactionType string) error
	RemoveUserReaction(ctx context.Context, userID string, target model.ReactionTarget) error
	Toggle(ctx context.Context, userID string, target model.ReactionTarget, reactionType string) (*dto.ReactionStateDTO, error)
}

type reactionServiceImpl struct {
	reactionRepo repository.ReactionRepo
	postRepo     repository.PostRepo
	commentRepo  repository.CommentRepo
	syncSvc      SyncService
}

func NewReactionService(
	reactionRepo repository.ReactionRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	syncSvc SyncService,
) ReactionService {
	return &reactionServiceImpl{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		syncSvc:      syncSvc,
	}
}

func validReactionType(reactionType string) bool {
	for _, t := range consts.ReactionTypes {
		if t == reactionType {
			return true
		}
	}
	return false
}

// GetUserReaction 查询当前表态类型，无表态时返回空字符串
func (s *reactionServiceImpl) GetUserReaction(ctx context.Context, userID string, target model.ReactionTarget) (string, error) {
	if !target.Valid() {
		return "", ErrTargetInvalid
	}

	reaction, err := s.reactionRepo.Get(ctx, userID, target)
	if err != nil {
		return "", err
	}
	if reaction == nil {
		return "", nil
	}
	return reaction.ReactionType, nil
}

// SetUserReaction 幂等写入：同一 (user, 目标) 的旧表态被覆盖而不是追加
func (s *reactionServiceImpl) SetUserReaction(ctx context.Context, userID string, target model.ReactionTarget, reactionType string) error {
	if !target.Valid() {
		return ErrTargetInvalid
	}
	if !validReactionType(reactionType) {
		return ErrReactionInvalid
	}
	return s.reactionRepo.Upsert(ctx, userID, target, reactionType)
}

// RemoveUserReaction 删除表态记录，记录不存在不算错误
func (s *reactionServiceImpl) RemoveUserReaction(ctx context.Context, userID string, target model.ReactionTarget) error {
	if !target.Valid() {
		return ErrTargetInvalid
	}
	return s.reactionRepo.Delete(ctx, userID, target)
}

// Toggle 表态切换协议：点击与当前相同的类型则取消，否则覆盖为新类型，
// 随后以台账为准重算目标上的聚合计数。重算优于本地加减，因为本地加减
// 修不了既有漂移；只有重算失败时才退回本地加减的尽力而为路径。
func (s *reactionServiceImpl) Toggle(ctx context.Context, userID string, target model.ReactionTarget, reactionType string) (*dto.ReactionStateDTO, error) {
	if !target.Valid() {
		return nil, ErrTargetInvalid
	}
	if !validReactionType(reactionType) {
		return nil, ErrReactionInvalid
	}

	if err := s.checkTargetExists(ctx, target); err != nil {
		return nil, err
	}

	prior, err := s.reactionRepo.Get(ctx, userID, target)
	if err != nil {
		return nil, err
	}

	current := reactionType
	if prior != nil && prior.ReactionType == reactionType {
		if err = s.reactionRepo.Delete(ctx, userID, target); err != nil {
			return nil, err
		}
		current = ""
	} else {
		if err = s.reactionRepo.Upsert(ctx, userID, target, reactionType); err != nil {
			return nil, err
		}
	}

	counts, err := s.resyncTarget(ctx, target)
	if err != nil {
		log.WarnContext(ctx, "reaction resync failed, falling back to local arithmetic", "err", err)
		counts = s.localAdjust(ctx, target, prior, current)
	}

	return &dto.ReactionStateDTO{
		Counts:       counts,
		UserReaction: current,
	}, nil
}

func (s *reactionServiceImpl) checkTargetExists(ctx context.Context, target model.ReactionTarget) error {
	if !target.PostID.IsZero() {
		post, err := s.postRepo.GetByID(ctx, target.PostID)
		if err != nil {
			return err
		}
		if post == nil {
			return ErrPostNotFound
		}
		return nil
	}

	comment, err := s.commentRepo.GetByID(ctx, target.CommentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	return nil
}

func (s *reactionServiceImpl) resyncTarget(ctx context.Context, target model.ReactionTarget) (model.ReactionCounts, error) {
	if !target.PostID.IsZero() {
		return s.syncSvc.SyncPostReactionCounts(ctx, target.PostID)
	}
	return s.syncSvc.SyncCommentReactionCounts(ctx, target.CommentID)
}

// localAdjust 重算失败时的兜底：旧类型减一、新类型加一，然后读回当前值。
// 结果可能带着此前的漂移，直到下一次成功重算才会修正。
func (s *reactionServiceImpl) localAdjust(ctx context.Context, target model.ReactionTarget, prior *model.UserReaction, current string) model.ReactionCounts {
	inc := s.commentRepo.IncReaction
	if !target.PostID.IsZero() {
		inc = s.postRepo.IncReaction
	}
	_, id := target.Filter()

	if prior != nil {
		if err := inc(ctx, id, prior.ReactionType, -1); err != nil {
			log.WarnContext(ctx, "local reaction decrement failed", "err", err)
		}
	}
	if current != "" {
		if err := inc(ctx, id, current, 1); err != nil {
			log.WarnContext(ctx, "local reaction increment failed", "err", err)
		}
	}

	if !target.PostID.IsZero() {
		if post, err := s.postRepo.GetByID(ctx, target.PostID); err == nil && post != nil {
			return post.Reactions
		}
	} else {
		if comment, err := s.commentRepo.GetByID(ctx, target.CommentID); err == nil && comment != nil {
			return comment.Reactions
		}
	}
	return model.ReactionCounts{}
}
