package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrashItem 回收站条目。源文档被删除后，该条目是其唯一幸存副本，
// 恢复或到期清理之前内容只存在于这里。
type TrashItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type       string             `bson:"type" json:"type"`                      // post / comment
	Title      string             `bson:"title" json:"title"`                    // 帖子标题；评论为预览文本
	Content    string             `bson:"content" json:"content"`                // 内容快照（深拷贝，非引用）
	OriginalID primitive.ObjectID `bson:"original_id" json:"originalId"`         // 被删除源文档的 ID，恢复时不复用
	DeletedBy  string             `bson:"deleted_by,omitempty" json:"deletedBy"` // 操作者标识，可为空
	DeletedAt  time.Time          `bson:"deleted_at" json:"deletedAt"`
	ExpiresAt  time.Time          `bson:"expires_at" json:"expiresAt"` // DeletedAt + consts.TrashRetention
	Metadata   TrashMetadata      `bson:"metadata" json:"metadata"`
}

// TrashMetadata 按类型区分的快照元数据。
// 帖子携带 tags/mood/date/reactions，评论携带 post_id/is_author_reply/reactions。
type TrashMetadata struct {
	Tags          []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Mood          string             `bson:"mood,omitempty" json:"mood,omitempty"`
	Date          time.Time          `bson:"date,omitempty" json:"date,omitempty"`
	PostID        primitive.ObjectID `bson:"post_id,omitempty" json:"postId,omitempty"`
	IsAuthorReply bool               `bson:"is_author_reply,omitempty" json:"isAuthorReply,omitempty"`
	Reactions     ReactionCounts     `bson:"reactions" json:"reactions"`
}
