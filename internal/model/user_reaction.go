package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserReaction 表态台账记录。复合身份为 (user_id, 目标)，目标是 post_id 和
// comment_id 中恰好一个，另一个字段省略不写入，避免产生歧义的空引用。
// 同一 (user_id, 目标) 至多存在一条记录，改表态为覆盖而非追加。
type UserReaction struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"userId"` // 匿名弱标识（浏览器生成），不可信但足够去重
	PostID       primitive.ObjectID `bson:"post_id,omitempty" json:"postId,omitempty"`
	CommentID    primitive.ObjectID `bson:"comment_id,omitempty" json:"commentId,omitempty"`
	ReactionType string             `bson:"reaction_type" json:"reactionType"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ReactionTarget 表态目标，post_id / comment_id 二选一
type ReactionTarget struct {
	PostID    primitive.ObjectID
	CommentID primitive.ObjectID
}

// Valid 目标必须且只能指定一个 ID
func (s ReactionTarget) Valid() bool {
	return s.PostID.IsZero() != s.CommentID.IsZero()
}

// Filter 目标对应的台账查询条件字段名与取值
func (s ReactionTarget) Filter() (field string, id primitive.ObjectID) {
	if !s.PostID.IsZero() {
		return "post_id", s.PostID
	}
	return "comment_id", s.CommentID
}
