package dto

// VisitDTO 访客访问上报
type VisitDTO struct {
	Path     string `json:"path" binding:"required,max=512"`
	Referrer string `json:"referrer" binding:"max=512"`
}

// VisitorSummaryDTO 访客统计摘要
type VisitorSummaryDTO struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
}
