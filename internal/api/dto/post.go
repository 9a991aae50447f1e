package dto

import "Daybook/internal/model"

// PostBaseDTO 帖子 - 新增或修改
type PostBaseDTO struct {
	Title   string   `json:"title" binding:"required,min=1,max=255"`
	Content string   `json:"content" binding:"required,min=1"`
	Date    string   `json:"date" binding:"required"` // YYYY-MM-DD，可为过去或未来
	Tags    []string `json:"tags" binding:"max=20"`
	Mood    string   `json:"mood"`
}

// PostPageDTO 帖子列表分页结果
type PostPageDTO struct {
	Posts    []*model.Post `json:"posts"`
	Page     int64         `json:"page"`
	PageSize int64         `json:"pageSize"`
	Total    int64         `json:"total"`
}
