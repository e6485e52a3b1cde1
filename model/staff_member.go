package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StaffMember 员工在某店铺的在职记录
type StaffMember struct {
	Id             string          `json:"id" gorm:"type:char(36);primaryKey"`
	UserId         string          `json:"user" gorm:"column:user_id;type:char(36);not null;index"`
	StoreId        string          `json:"store" gorm:"column:store_id;type:char(36);not null;index"`
	HourlyWage     decimal.Decimal `json:"hourly_wage" gorm:"type:decimal(8,2)"`
	CommissionRate float64         `json:"commission_rate"`
	IsOnDuty       bool            `json:"is_on_duty" gorm:"column:is_on_duty"`
	CheckIn        time.Time       `json:"check_in" gorm:"column:check_in"`
	CheckOut       time.Time       `json:"check_out" gorm:"column:check_out"`

	User  *CmsUser `json:"-" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Store *Store   `json:"-" gorm:"foreignKey:StoreId;constraint:OnDelete:CASCADE"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}

func (m *StaffMember) BeforeCreate(tx *gorm.DB) error {
	if m.Id == "" {
		m.Id = uuid.NewString()
	}
	return nil
}
