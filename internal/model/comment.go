package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment 匿名评论文档模型
type Comment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID        primitive.ObjectID `bson:"post_id" json:"postId"`                // 所属帖子 ID，外键约束由应用层保证
	Text          string             `bson:"text" json:"text"`                     // 评论内容
	IPHash        string             `bson:"ip_hash" json:"ipHash"`                // 匿名弱标识，不作为可信身份
	IsAuthorReply bool               `bson:"is_author_reply" json:"isAuthorReply"` // 是否为作者（管理员）回复
	Reactions     ReactionCounts     `bson:"reactions" json:"reactions"`           // 冗余表态计数
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}
