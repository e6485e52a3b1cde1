package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 用户角色
const (
	RoleCast    = "Cast"
	RoleStaff   = "Staff"
	RoleManager = "Manager"
	RoleAdmin   = "Admin"
)

// CmsUser 应用层用户表（非平台账号体系），对应 DDL 的 users 表
type CmsUser struct {
	Id           string    `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"size:255"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:255"`
	Role         string    `json:"role" gorm:"size:255;default:Cast"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (CmsUser) TableName() string {
	return "users"
}

func (u *CmsUser) BeforeCreate(tx *gorm.DB) error {
	if u.Id == "" {
		u.Id = uuid.NewString()
	}
	return nil
}
