package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailySummary 每店每日的营收汇总
type DailySummary struct {
	Id            string          `json:"id" gorm:"type:char(36);primaryKey"`
	StoreId       string          `json:"store" gorm:"column:store_id;type:char(36);not null;index"`
	ReportDate    Date            `json:"report_date" gorm:"column:report_date"`
	TotalSales    decimal.Decimal `json:"total_sales" gorm:"column:total_sales;type:decimal(8,2)"`
	TotalExpenses decimal.Decimal `json:"total_expenses" gorm:"column:total_expenses;type:decimal(8,2)"`
	LaborCosts    decimal.Decimal `json:"labor_costs" gorm:"column:labor_costs;type:decimal(8,2)"`
	Notes         string          `json:"notes" gorm:"type:text"`

	Store *Store `json:"-" gorm:"foreignKey:StoreId;constraint:OnDelete:CASCADE"`
}

func (DailySummary) TableName() string {
	return "daily_summaries"
}

func (s *DailySummary) BeforeCreate(tx *gorm.DB) error {
	if s.Id == "" {
		s.Id = uuid.NewString()
	}
	return nil
}
