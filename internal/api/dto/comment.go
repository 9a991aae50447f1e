package dto

// CommentCreateDTO 评论 - 新增（匿名或作者回复）
type CommentCreateDTO struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}
