package inout

import (
	"ttland-cms/model"

	"github.com/shopspring/decimal"
)

// PerformanceTargetReq 创建/整体更新业绩目标
type PerformanceTargetReq struct {
	Staff        string           `json:"staff" binding:"required,uuid"`
	TargetAmount *decimal.Decimal `json:"target_amount" binding:"required"`
	TargetType   string           `json:"target_type" binding:"required,oneof=Daily Monthly"`
	TargetDate   *model.Date      `json:"target_date" binding:"required"`
}

// PerformanceTargetPatchReq 部分更新业绩目标
type PerformanceTargetPatchReq struct {
	Staff        *string          `json:"staff" binding:"omitempty,uuid"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
	TargetType   *string          `json:"target_type" binding:"omitempty,oneof=Daily Monthly"`
	TargetDate   *model.Date      `json:"target_date"`
}
