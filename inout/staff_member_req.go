package inout

import (
	"time"

	"github.com/shopspring/decimal"
)

// StaffMemberReq 创建/整体更新员工记录
type StaffMemberReq struct {
	User           string           `json:"user" binding:"required,uuid"`
	Store          string           `json:"store" binding:"required,uuid"`
	HourlyWage     *decimal.Decimal `json:"hourly_wage" binding:"required"`
	CommissionRate *float64         `json:"commission_rate" binding:"required"`
	IsOnDuty       *bool            `json:"is_on_duty" binding:"required"`
	CheckIn        *time.Time       `json:"check_in" binding:"required"`
	CheckOut       *time.Time       `json:"check_out" binding:"required"`
}

// StaffMemberPatchReq 部分更新员工记录
type StaffMemberPatchReq struct {
	User           *string          `json:"user" binding:"omitempty,uuid"`
	Store          *string          `json:"store" binding:"omitempty,uuid"`
	HourlyWage     *decimal.Decimal `json:"hourly_wage"`
	CommissionRate *float64         `json:"commission_rate"`
	IsOnDuty       *bool            `json:"is_on_duty"`
	CheckIn        *time.Time       `json:"check_in"`
	CheckOut       *time.Time       `json:"check_out"`
}
