package model

// CustomerProfile 客人生日/占卜信息，与 Customer 一对一（主键即 customer_id）
type CustomerProfile struct {
	CustomerId    string `json:"customer" gorm:"column:customer_id;type:char(36);primaryKey"`
	Birthday      Date   `json:"birthday"`
	Zodiac        string `json:"zodiac" gorm:"size:255"`
	AnimalFortune string `json:"animal_fortune" gorm:"column:animal_fortune;size:255"`

	Customer *Customer `json:"-" gorm:"foreignKey:CustomerId;constraint:OnDelete:CASCADE"`
}

func (CustomerProfile) TableName() string {
	return "customers_profile"
}
