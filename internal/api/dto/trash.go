package dto

// SweepResultDTO 清扫到期条目的结果
type SweepResultDTO struct {
	Purged int64 `json:"purged"`
}
