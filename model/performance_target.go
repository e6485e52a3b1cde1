package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 目标类型
const (
	TargetTypeDaily   = "Daily"
	TargetTypeMonthly = "Monthly"
)

// PerformanceTarget 员工业绩目标
type PerformanceTarget struct {
	Id           string          `json:"id" gorm:"type:char(36);primaryKey"`
	StaffId      string          `json:"staff" gorm:"column:staff_id;type:char(36);not null;index"`
	TargetAmount decimal.Decimal `json:"target_amount" gorm:"type:decimal(8,2)"`
	TargetType   string          `json:"target_type" gorm:"column:target_type;size:255"`
	TargetDate   Date            `json:"target_date" gorm:"column:target_date"`

	Staff *StaffMember `json:"-" gorm:"foreignKey:StaffId;constraint:OnDelete:CASCADE"`
}

func (PerformanceTarget) TableName() string {
	return "performance_targets"
}

func (t *PerformanceTarget) BeforeCreate(tx *gorm.DB) error {
	if t.Id == "" {
		t.Id = uuid.NewString()
	}
	return nil
}
