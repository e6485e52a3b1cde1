package model

// 酒量偏好
const (
	AlcoholStrengthWeak   = "Weak"
	AlcoholStrengthMedium = "Medium"
	AlcoholStrengthStrong = "Strong"
)

// CustomerPreference 客人口味偏好，与 Customer 一对一
type CustomerPreference struct {
	CustomerId      string `json:"customer" gorm:"column:customer_id;type:char(36);primaryKey"`
	AlcoholStrength string `json:"alcohol_strength" gorm:"column:alcohol_strength;size:255"`
	FavoriteFood    string `json:"favorite_food" gorm:"column:favorite_food;type:text"`
	DislikeFood     string `json:"dislike_food" gorm:"column:dislike_food;type:text"`
	Hobby           string `json:"hobby" gorm:"type:text"`
	FavoriteBrand   string `json:"favorite_brand" gorm:"column:favorite_brand;type:text"`

	Customer *Customer `json:"-" gorm:"foreignKey:CustomerId;constraint:OnDelete:CASCADE"`
}

func (CustomerPreference) TableName() string {
	return "customer_preferences"
}
