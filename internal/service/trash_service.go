package service

import (
	"Daybook/internal/model"
	"Daybook/internal/pkg/consts"
	"Daybook/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TrashService interface {
	MoveToTrash(ctx context.Context, sourceType string, sourceID primitive.ObjectID, deletedBy string) (primitive.ObjectID, error)
	Restore(ctx context.Context, trashID primitive.ObjectID) error
	PermanentlyDelete(ctx context.Context, trashID primitive.ObjectID) error
	SweepExpired(ctx context.Context) (int64, error)
	ListTrash(ctx context.Context) ([]*model.TrashItem, error)
}

type trashServiceImpl struct {
	trashRepo   repository.TrashRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
}

func NewTrashService(
	trashRepo repository.TrashRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
) TrashService {
	return &trashServiceImpl{
		trashRepo:   trashRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// MoveToTrash 把帖子或评论移入回收站：先写入快照，再删除源文档。
// 两步写入没有跨文档事务，顺序保证快照先于删除存在，最坏情况是源删除失败
// 留下一份重复（快照 + 活跃源），不会丢内容。
func (s *trashServiceImpl) MoveToTrash(ctx context.Context, sourceType string, sourceID primitive.ObjectID, deletedBy string) (primitive.ObjectID, error) {
	switch sourceType {
	case consts.TrashTypePost:
		return s.movePostToTrash(ctx, sourceID, deletedBy)
	case consts.TrashTypeComment:
		return s.moveCommentToTrash(ctx, sourceID, deletedBy)
	default:
		return primitive.NilObjectID, ErrTrashTypeInvalid
	}
}

func (s *trashServiceImpl) movePostToTrash(ctx context.Context, postID primitive.ObjectID, deletedBy string) (primitive.ObjectID, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if post == nil {
		return primitive.NilObjectID, ErrPostNotFound
	}

	// 深拷贝快照，源文档即将被删除，快照之后不受任何写入影响
	var meta model.TrashMetadata
	if err = copier.CopyWithOption(&meta, post, copier.Option{DeepCopy: true}); err != nil {
		return primitive.NilObjectID, err
	}

	now := time.Now()
	item := &model.TrashItem{
		Type:       consts.TrashTypePost,
		Title:      post.Title,
		Content:    post.Content,
		OriginalID: post.ID,
		DeletedBy:  deletedBy,
		DeletedAt:  now,
		ExpiresAt:  now.Add(consts.TrashRetention),
		Metadata:   meta,
	}

	trashID, err := s.trashRepo.Insert(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if err = s.postRepo.Delete(ctx, postID); err != nil {
		// 快照已写入而源未删除，留给人工或下次操作处理
		log.ErrorContext(ctx, "trash snapshot created but source post not deleted",
			"post_id", postID.Hex(), "trash_id", trashID.Hex(), "err", err)
		return primitive.NilObjectID, err
	}

	log.InfoContext(ctx, "post moved to trash", "post_id", postID.Hex(), "trash_id", trashID.Hex())
	return trashID, nil
}

func (s *trashServiceImpl) moveCommentToTrash(ctx context.Context, commentID primitive.ObjectID, deletedBy string) (primitive.ObjectID, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if comment == nil {
		return primitive.NilObjectID, ErrCommentNotFound
	}

	var meta model.TrashMetadata
	if err = copier.CopyWithOption(&meta, comment, copier.Option{DeepCopy: true}); err != nil {
		return primitive.NilObjectID, err
	}

	now := time.Now()
	item := &model.TrashItem{
		Type:       consts.TrashTypeComment,
		Title:      commentPreview(comment.Text),
		Content:    comment.Text,
		OriginalID: comment.ID,
		DeletedBy:  deletedBy,
		DeletedAt:  now,
		ExpiresAt:  now.Add(consts.TrashRetention),
		Metadata:   meta,
	}

	trashID, err := s.trashRepo.Insert(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if err = s.commentRepo.Delete(ctx, commentID); err != nil {
		log.ErrorContext(ctx, "trash snapshot created but source comment not deleted",
			"comment_id", commentID.Hex(), "trash_id", trashID.Hex(), "err", err)
		return primitive.NilObjectID, err
	}

	// 父帖子的冗余计数随评论删除递减；父帖子已不存在时不视为失败
	if err = s.postRepo.IncCommentCount(ctx, comment.PostID, -1); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.WarnContext(ctx, "decrement comment count failed",
				"post_id", comment.PostID.Hex(), "err", err)
		}
	}

	log.InfoContext(ctx, "comment moved to trash", "comment_id", commentID.Hex(), "trash_id", trashID.Hex())
	return trashID, nil
}

// Restore 把回收站条目恢复为活跃文档。恢复出的文档使用库新分配的 ID，
// 原 ID 不复用。到期与否不在此检查，只有清扫任务看 expires_at。
func (s *trashServiceImpl) Restore(ctx context.Context, trashID primitive.ObjectID) error {
	item, err := s.trashRepo.GetByID(ctx, trashID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrTrashNotFound
	}

	switch item.Type {
	case consts.TrashTypePost:
		err = s.restorePost(ctx, item)
	case consts.TrashTypeComment:
		err = s.restoreComment(ctx, item)
	default:
		return ErrTrashTypeInvalid
	}
	if err != nil {
		return err
	}

	return s.trashRepo.Delete(ctx, trashID)
}

// restorePost 评论计数与分享计数归零：恢复帖子不会复活它名下已删除的评论
func (s *trashServiceImpl) restorePost(ctx context.Context, item *model.TrashItem) error {
	post := &model.Post{
		Title:     item.Title,
		Content:   item.Content,
		Date:      item.Metadata.Date,
		Tags:      item.Metadata.Tags,
		Mood:      item.Metadata.Mood,
		Reactions: item.Metadata.Reactions,
	}

	newID, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "post restored from trash",
		"trash_id", item.ID.Hex(), "original_id", item.OriginalID.Hex(), "new_id", newID.Hex())
	return nil
}

func (s *trashServiceImpl) restoreComment(ctx context.Context, item *model.TrashItem) error {
	// 父帖子已经不在时拒绝恢复，条目原样留在回收站
	if !item.Metadata.PostID.IsZero() {
		parent, err := s.postRepo.GetByID(ctx, item.Metadata.PostID)
		if err != nil {
			return err
		}
		if parent == nil {
			return ErrTrashOrphanComment
		}
	}

	comment := &model.Comment{
		PostID:        item.Metadata.PostID,
		Text:          item.Content,
		IsAuthorReply: item.Metadata.IsAuthorReply,
		Reactions:     item.Metadata.Reactions,
	}

	newID, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return err
	}

	if !item.Metadata.PostID.IsZero() {
		if err = s.postRepo.IncCommentCount(ctx, item.Metadata.PostID, 1); err != nil {
			log.WarnContext(ctx, "increment comment count failed",
				"post_id", item.Metadata.PostID.Hex(), "err", err)
		}
	}

	log.InfoContext(ctx, "comment restored from trash",
		"trash_id", item.ID.Hex(), "original_id", item.OriginalID.Hex(), "new_id", newID.Hex())
	return nil
}

// PermanentlyDelete 彻底删除，不可恢复。源文档早在入回收站时已删除，
// 这里只移除快照本身。
func (s *trashServiceImpl) PermanentlyDelete(ctx context.Context, trashID primitive.ObjectID) error {
	item, err := s.trashRepo.GetByID(ctx, trashID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrTrashNotFound
	}
	return s.trashRepo.Delete(ctx, trashID)
}

// SweepExpired 清扫全部到期条目（expires_at ≤ now），返回删除数量。
// 可重复、可并发调用，多个清扫互不影响。
func (s *trashServiceImpl) SweepExpired(ctx context.Context) (int64, error) {
	count, err := s.trashRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.InfoContext(ctx, "expired trash purged", "count", count)
	}
	return count, nil
}

func (s *trashServiceImpl) ListTrash(ctx context.Context) ([]*model.TrashItem, error) {
	return s.trashRepo.List(ctx)
}

// commentPreview 取评论前 50 个字符作为回收站条目标题
func commentPreview(text string) string {
	runes := []rune(text)
	if len(runes) <= 50 {
		return text
	}
	return string(runes[:50]) + "..."
}
