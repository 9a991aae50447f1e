package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post 日记/故事文档模型
type Post struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`                // 标题
	Content      string             `bson:"content" json:"content"`            // 正文（富文本源码）
	Date         time.Time          `bson:"date" json:"date"`                  // 作者指定的日记日期，可为过去或未来
	Tags         []string           `bson:"tags" json:"tags"`                  // 标签，统一小写
	Mood         string             `bson:"mood" json:"mood"`                  // 心情，取值见 consts.Moods
	Reactions    ReactionCounts     `bson:"reactions" json:"reactions"`        // 冗余表态计数，可由 user_reactions 重算
	ShareCount   int64              `bson:"share_count" json:"shareCount"`     // 分享次数
	CommentCount int64              `bson:"comment_count" json:"commentCount"` // 冗余评论计数，可由 comments 重算
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// VisitorLog 访客访问记录
type VisitorLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Path      string             `bson:"path" json:"path"`
	Referrer  string             `bson:"referrer,omitempty" json:"referrer"`
	IPHash    string             `bson:"ip_hash" json:"ipHash"`
	VisitedAt time.Time          `bson:"visited_at" json:"visitedAt"`
}
