package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 店铺类型
const (
	StoreTypeConCafe  = "Con Cafe"
	StoreTypeBar      = "Bar"
	StoreTypeHostClub = "Host Club"
)

type Store struct {
	Id        string `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string `json:"name" gorm:"size:255;default:TTLAND"`
	StoreType string `json:"store_type" gorm:"column:store_type;size:255;default:Con Cafe"`
	Address   string `json:"address" gorm:"type:text"`
	IsActive  bool   `json:"is_active" gorm:"column:is_active"`
}

func (Store) TableName() string {
	return "stores"
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.Id == "" {
		s.Id = uuid.NewString()
	}
	return nil
}
