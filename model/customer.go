package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Customer 店铺客人，联系方式与喜好为半结构化 JSON
type Customer struct {
	Id          string          `json:"id" gorm:"type:char(36);primaryKey"`
	StoreId     string          `json:"store" gorm:"column:store_id;type:char(36);not null;index"`
	Name        string          `json:"name" gorm:"size:255"`
	FirstVisit  Date            `json:"first_visit" gorm:"column:first_visit"`
	ContactInfo datatypes.JSON  `json:"contact_info" gorm:"column:contact_info"`
	Preferences datatypes.JSON  `json:"preferences"`
	TotalSpend  decimal.Decimal `json:"total_spend" gorm:"column:total_spend;type:decimal(8,2)"`

	Store *Store `json:"-" gorm:"foreignKey:StoreId;constraint:OnDelete:CASCADE"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}
