package consts

import "time"

// 回收站条目类型
const (
	TrashTypePost    = "post"
	TrashTypeComment = "comment"
)

// TrashRetention 回收站保留期（产品口径为 12 个月，按 12×30 天计算）
const TrashRetention = 12 * 30 * 24 * time.Hour

// CleanupInterval 自动清理的最小间隔
const CleanupInterval = 24 * time.Hour

// 表态类型
const (
	ReactionLike  = "like"
	ReactionLove  = "love"
	ReactionLaugh = "laugh"
	ReactionWow   = "wow"
	ReactionSad   = "sad"
	ReactionAngry = "angry"
)

// ReactionTypes 全部合法表态类型
var ReactionTypes = []string{
	ReactionLike,
	ReactionLove,
	ReactionLaugh,
	ReactionWow,
	ReactionSad,
	ReactionAngry,
}

// Moods 心情词表
var Moods = []string{
	"happy", "calm", "excited", "grateful",
	"tired", "sad", "anxious", "nostalgic",
}
