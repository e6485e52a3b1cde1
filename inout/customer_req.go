package inout

import (
	"ttland-cms/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CustomerReq 创建/整体更新客人（仅 customers 表，扩展表单独维护）
type CustomerReq struct {
	Store       string           `json:"store" binding:"required,uuid"`
	Name        string           `json:"name" binding:"required,max=255"`
	FirstVisit  *model.Date      `json:"first_visit" binding:"required"`
	ContactInfo datatypes.JSON   `json:"contact_info" binding:"required"`
	Preferences datatypes.JSON   `json:"preferences" binding:"required"`
	TotalSpend  *decimal.Decimal `json:"total_spend" binding:"required"`
}

// CustomerPatchReq 部分更新客人
type CustomerPatchReq struct {
	Store       *string          `json:"store" binding:"omitempty,uuid"`
	Name        *string          `json:"name" binding:"omitempty,max=255"`
	FirstVisit  *model.Date      `json:"first_visit"`
	ContactInfo datatypes.JSON   `json:"contact_info"`
	Preferences datatypes.JSON   `json:"preferences"`
	TotalSpend  *decimal.Decimal `json:"total_spend"`
}
