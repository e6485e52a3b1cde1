package inout

import (
	"ttland-cms/model"
)

// CustomerProfileReq 创建/整体更新客人生日档案
type CustomerProfileReq struct {
	Customer      string      `json:"customer" binding:"required,uuid"`
	Birthday      *model.Date `json:"birthday" binding:"required"`
	Zodiac        string      `json:"zodiac" binding:"required,max=255"`
	AnimalFortune string      `json:"animal_fortune" binding:"required,max=255"`
}

// CustomerProfilePatchReq 部分更新客人生日档案
type CustomerProfilePatchReq struct {
	Birthday      *model.Date `json:"birthday"`
	Zodiac        *string     `json:"zodiac" binding:"omitempty,max=255"`
	AnimalFortune *string     `json:"animal_fortune" binding:"omitempty,max=255"`
}

// CustomerDetailReq 创建/整体更新客人详细档案
type CustomerDetailReq struct {
	Customer              string `json:"customer" binding:"required,uuid"`
	BloodType             string `json:"blood_type" binding:"required,max=255"`
	Birthplace            string `json:"birthplace" binding:"required,max=255"`
	AppearanceMemo        string `json:"appearance_memo" binding:"required"`
	CompanyName           string `json:"company_name" binding:"required,max=255"`
	JobTitle              string `json:"job_title" binding:"required,max=255"`
	JobDescription        string `json:"job_description" binding:"required"`
	WorkLocation          string `json:"work_location" binding:"required,max=255"`
	MonthlyIncome         *int   `json:"monthly_income" binding:"required"`
	MonthlyDrinkingBudget *int   `json:"monthly_drinking_budget" binding:"required"`
	ResidenceType         string `json:"residence_type" binding:"required,oneof=Own Rent Other"`
	NearestStation        string `json:"nearest_station" binding:"required,max=255"`
	HasLover              *bool  `json:"has_lover" binding:"required"`
	MaritalStatus         string `json:"marital_status" binding:"required,oneof=Single Married Divorced Widowed"`
	ChildrenInfo          string `json:"children_info" binding:"required,max=255"`
}

// CustomerDetailPatchReq 部分更新客人详细档案
type CustomerDetailPatchReq struct {
	BloodType             *string `json:"blood_type" binding:"omitempty,max=255"`
	Birthplace            *string `json:"birthplace" binding:"omitempty,max=255"`
	AppearanceMemo        *string `json:"appearance_memo"`
	CompanyName           *string `json:"company_name" binding:"omitempty,max=255"`
	JobTitle              *string `json:"job_title" binding:"omitempty,max=255"`
	JobDescription        *string `json:"job_description"`
	WorkLocation          *string `json:"work_location" binding:"omitempty,max=255"`
	MonthlyIncome         *int    `json:"monthly_income"`
	MonthlyDrinkingBudget *int    `json:"monthly_drinking_budget"`
	ResidenceType         *string `json:"residence_type" binding:"omitempty,oneof=Own Rent Other"`
	NearestStation        *string `json:"nearest_station" binding:"omitempty,max=255"`
	HasLover              *bool   `json:"has_lover"`
	MaritalStatus         *string `json:"marital_status" binding:"omitempty,oneof=Single Married Divorced Widowed"`
	ChildrenInfo          *string `json:"children_info" binding:"omitempty,max=255"`
}

// CustomerPreferenceReq 创建/整体更新客人口味偏好
type CustomerPreferenceReq struct {
	Customer        string `json:"customer" binding:"required,uuid"`
	AlcoholStrength string `json:"alcohol_strength" binding:"required,oneof=Weak Medium Strong"`
	FavoriteFood    string `json:"favorite_food" binding:"required"`
	DislikeFood     string `json:"dislike_food" binding:"required"`
	Hobby           string `json:"hobby" binding:"required"`
	FavoriteBrand   string `json:"favorite_brand" binding:"required"`
}

// CustomerPreferencePatchReq 部分更新客人口味偏好
type CustomerPreferencePatchReq struct {
	AlcoholStrength *string `json:"alcohol_strength" binding:"omitempty,oneof=Weak Medium Strong"`
	FavoriteFood    *string `json:"favorite_food"`
	DislikeFood     *string `json:"dislike_food"`
	Hobby           *string `json:"hobby"`
	FavoriteBrand   *string `json:"favorite_brand"`
}
