package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 支付方式
const (
	PaymentMethodCash       = "Cash"
	PaymentMethodCreditCard = "Credit Card"
	PaymentMethodPayPay     = "PayPay"
)

// VisitRecord 一次来店记录，cast 为接待员工
type VisitRecord struct {
	Id             string          `json:"id" gorm:"type:char(36);primaryKey"`
	CustomerId     string          `json:"customer" gorm:"column:customer_id;type:char(36);not null;index"`
	CastId         string          `json:"cast" gorm:"column:cast_id;type:char(36);not null;index"`
	VisitDate      Date            `json:"visit_date" gorm:"column:visit_date"`
	Spending       decimal.Decimal `json:"spending" gorm:"type:decimal(8,2)"`
	PaymentMethod  string          `json:"payment_method" gorm:"column:payment_method;size:255"`
	EntryTime      time.Time       `json:"entry_time" gorm:"column:entry_time"`
	ExitTime       time.Time       `json:"exit_time" gorm:"column:exit_time"`
	Accompanied    bool            `json:"accompanied"`
	Companions     string          `json:"companions" gorm:"size:255"`
	Memo           string          `json:"memo" gorm:"type:text"`
	UnpaidAmount   decimal.Decimal `json:"unpaid_amount" gorm:"column:unpaid_amount;type:decimal(8,2)"`
	ReceivedAmount int64           `json:"received_amount" gorm:"column:received_amount"`
	UnpaidDate     Date            `json:"unpaid_date" gorm:"column:unpaid_date"`
	Receipt        bool            `json:"receipt"`

	Customer *Customer    `json:"-" gorm:"foreignKey:CustomerId;constraint:OnDelete:CASCADE"`
	Cast     *StaffMember `json:"-" gorm:"foreignKey:CastId;constraint:OnDelete:CASCADE"`
}

func (VisitRecord) TableName() string {
	return "visit_records"
}

func (v *VisitRecord) BeforeCreate(tx *gorm.DB) error {
	if v.Id == "" {
		v.Id = uuid.NewString()
	}
	return nil
}
