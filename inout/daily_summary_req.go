package inout

import (
	"ttland-cms/model"

	"github.com/shopspring/decimal"
)

// DailySummaryReq 创建/整体更新每日汇总
type DailySummaryReq struct {
	Store         string           `json:"store" binding:"required,uuid"`
	ReportDate    *model.Date      `json:"report_date" binding:"required"`
	TotalSales    *decimal.Decimal `json:"total_sales" binding:"required"`
	TotalExpenses *decimal.Decimal `json:"total_expenses" binding:"required"`
	LaborCosts    *decimal.Decimal `json:"labor_costs" binding:"required"`
	Notes         string           `json:"notes" binding:"required"`
}

// DailySummaryPatchReq 部分更新每日汇总
type DailySummaryPatchReq struct {
	Store         *string          `json:"store" binding:"omitempty,uuid"`
	ReportDate    *model.Date      `json:"report_date"`
	TotalSales    *decimal.Decimal `json:"total_sales"`
	TotalExpenses *decimal.Decimal `json:"total_expenses"`
	LaborCosts    *decimal.Decimal `json:"labor_costs"`
	Notes         *string          `json:"notes"`
}
