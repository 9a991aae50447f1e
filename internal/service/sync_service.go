package service

import (
	"Daybook/internal/model"
	"Daybook/internal/pkg/consts"
	"Daybook/internal/repository"
	"context"
	log "log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyncReport 全量重算的汇总结果，单个帖子失败不会中断批次
type SyncReport struct {
	Synced int `json:"synced"`
	Errors int `json:"errors"`
}

type SyncService interface {
	SyncCommentCount(ctx context.Context, postID primitive.ObjectID) (int64, error)
	SyncPostReactionCounts(ctx context.Context, postID primitive.ObjectID) (model.ReactionCounts, error)
	SyncCommentReactionCounts(ctx context.Context, commentID primitive.ObjectID) (model.ReactionCounts, error)
	SyncAllCommentCounts(ctx context.Context) (*SyncReport, error)
	SyncAllReactionCounts(ctx context.Context) (*SyncReport, error)
}

type syncServiceImpl struct {
	postRepo     repository.PostRepo
	commentRepo  repository.CommentRepo
	reactionRepo repository.ReactionRepo
}

func NewSyncService(
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	reactionRepo repository.ReactionRepo,
) SyncService {
	return &syncServiceImpl{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
	}
}

// SyncCommentCount 以 comments 集合的基数为权威口径重算帖子的评论计数。
// 增量 ±1 维护只是优化，部分失败、并发写入或缺字段的历史数据都会造成漂移，
// 这里是唯一的修复手段。幂等：连续调用结果一致。
func (s *syncServiceImpl) SyncCommentCount(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}

	count, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return 0, err
	}

	if err = s.postRepo.SetCommentCount(ctx, postID, count); err != nil {
		return 0, err
	}
	return count, nil
}

// SyncPostReactionCounts 扫描帖子上的全部表态台账记录并按类型汇总写回。
// 未知的表态类型直接忽略，兼容历史数据的字段演进。
func (s *syncServiceImpl) SyncPostReactionCounts(ctx context.Context, postID primitive.ObjectID) (model.ReactionCounts, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return model.ReactionCounts{}, err
	}
	if post == nil {
		return model.ReactionCounts{}, ErrPostNotFound
	}

	counts, err := s.tallyReactions(ctx, model.ReactionTarget{PostID: postID})
	if err != nil {
		return model.ReactionCounts{}, err
	}

	if err = s.postRepo.SetReactionCounts(ctx, postID, counts); err != nil {
		return model.ReactionCounts{}, err
	}
	return counts, nil
}

// SyncCommentReactionCounts 评论目标的对应重算
func (s *syncServiceImpl) SyncCommentReactionCounts(ctx context.Context, commentID primitive.ObjectID) (model.ReactionCounts, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return model.ReactionCounts{}, err
	}
	if comment == nil {
		return model.ReactionCounts{}, ErrCommentNotFound
	}

	counts, err := s.tallyReactions(ctx, model.ReactionTarget{CommentID: commentID})
	if err != nil {
		return model.ReactionCounts{}, err
	}

	if err = s.commentRepo.SetReactionCounts(ctx, commentID, counts); err != nil {
		return model.ReactionCounts{}, err
	}
	return counts, nil
}

func (s *syncServiceImpl) tallyReactions(ctx context.Context, target model.ReactionTarget) (model.ReactionCounts, error) {
	reactions, err := s.reactionRepo.ListByTarget(ctx, target)
	if err != nil {
		return model.ReactionCounts{}, err
	}

	var counts model.ReactionCounts
	for _, r := range reactions {
		switch r.ReactionType {
		case consts.ReactionLike:
			counts.Like++
		case consts.ReactionLove:
			counts.Love++
		case consts.ReactionLaugh:
			counts.Laugh++
		case consts.ReactionWow:
			counts.Wow++
		case consts.ReactionSad:
			counts.Sad++
		case consts.ReactionAngry:
			counts.Angry++
		default:
			// 未知类型不计数也不报错
		}
	}
	return counts, nil
}

// SyncAllCommentCounts 对全部帖子重算评论计数，逐帖容错
func (s *syncServiceImpl) SyncAllCommentCounts(ctx context.Context) (*SyncReport, error) {
	return s.syncAll(ctx, "comment counts", func(ctx context.Context, postID primitive.ObjectID) error {
		_, err := s.SyncCommentCount(ctx, postID)
		return err
	})
}

// SyncAllReactionCounts 对全部帖子重算表态计数，逐帖容错
func (s *syncServiceImpl) SyncAllReactionCounts(ctx context.Context) (*SyncReport, error) {
	return s.syncAll(ctx, "reaction counts", func(ctx context.Context, postID primitive.ObjectID) error {
		_, err := s.SyncPostReactionCounts(ctx, postID)
		return err
	})
}

func (s *syncServiceImpl) syncAll(ctx context.Context, what string, fn func(context.Context, primitive.ObjectID) error) (*SyncReport, error) {
	ids, err := s.postRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	report := &SyncReport{}
	for _, id := range ids {
		if err := fn(ctx, id); err != nil {
			log.ErrorContext(ctx, "sync failed for post", "what", what, "post_id", id.Hex(), "err", err)
			report.Errors++
			continue
		}
		report.Synced++
	}

	log.InfoContext(ctx, "sync all finished",
		"what", what, "synced", report.Synced, "errors", report.Errors)
	return report, nil
}
