package inout

import (
	"time"

	"ttland-cms/model"

	"github.com/shopspring/decimal"
)

// VisitRecordReq 创建/整体更新来店记录
type VisitRecordReq struct {
	Customer       string           `json:"customer" binding:"required,uuid"`
	Cast           string           `json:"cast" binding:"required,uuid"`
	VisitDate      *model.Date      `json:"visit_date" binding:"required"`
	Spending       *decimal.Decimal `json:"spending" binding:"required"`
	PaymentMethod  string           `json:"payment_method" binding:"required,oneof=Cash 'Credit Card' PayPay"`
	EntryTime      *time.Time       `json:"entry_time" binding:"required"`
	ExitTime       *time.Time       `json:"exit_time" binding:"required"`
	Accompanied    *bool            `json:"accompanied" binding:"required"`
	Companions     string           `json:"companions" binding:"required,max=255"`
	Memo           string           `json:"memo" binding:"required"`
	UnpaidAmount   *decimal.Decimal `json:"unpaid_amount" binding:"required"`
	ReceivedAmount *int64           `json:"received_amount" binding:"required"`
	UnpaidDate     *model.Date      `json:"unpaid_date" binding:"required"`
	Receipt        *bool            `json:"receipt" binding:"required"`
}

// VisitRecordPatchReq 部分更新来店记录
type VisitRecordPatchReq struct {
	Customer       *string          `json:"customer" binding:"omitempty,uuid"`
	Cast           *string          `json:"cast" binding:"omitempty,uuid"`
	VisitDate      *model.Date      `json:"visit_date"`
	Spending       *decimal.Decimal `json:"spending"`
	PaymentMethod  *string          `json:"payment_method" binding:"omitempty,oneof=Cash 'Credit Card' PayPay"`
	EntryTime      *time.Time       `json:"entry_time"`
	ExitTime       *time.Time       `json:"exit_time"`
	Accompanied    *bool            `json:"accompanied"`
	Companions     *string          `json:"companions" binding:"omitempty,max=255"`
	Memo           *string          `json:"memo"`
	UnpaidAmount   *decimal.Decimal `json:"unpaid_amount"`
	ReceivedAmount *int64           `json:"received_amount"`
	UnpaidDate     *model.Date      `json:"unpaid_date"`
	Receipt        *bool            `json:"receipt"`
}
