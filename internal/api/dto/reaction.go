package dto

import "Daybook/internal/model"

// ReactionToggleDTO 表态切换请求
type ReactionToggleDTO struct {
	UserID       string `json:"user_id" binding:"required,min=1,max=64"` // 浏览器侧生成的匿名标识
	ReactionType string `json:"reaction_type" binding:"required"`
}

// ReactionStateDTO 表态切换后的最新状态
type ReactionStateDTO struct {
	Counts       model.ReactionCounts `json:"counts"`
	UserReaction string               `json:"userReaction"` // 为空表示当前无表态
}
