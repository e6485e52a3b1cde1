package model

// 居住类型
const (
	ResidenceTypeOwn   = "Own"
	ResidenceTypeRent  = "Rent"
	ResidenceTypeOther = "Other"
)

// 婚姻状况
const (
	MaritalStatusSingle   = "Single"
	MaritalStatusMarried  = "Married"
	MaritalStatusDivorced = "Divorced"
	MaritalStatusWidowed  = "Widowed"
)

// CustomerDetail 客人职业/居住等详细信息，与 Customer 一对一
type CustomerDetail struct {
	CustomerId            string `json:"customer" gorm:"column:customer_id;type:char(36);primaryKey"`
	BloodType             string `json:"blood_type" gorm:"column:blood_type;size:255"`
	Birthplace            string `json:"birthplace" gorm:"size:255"`
	AppearanceMemo        string `json:"appearance_memo" gorm:"column:appearance_memo;type:text"`
	CompanyName           string `json:"company_name" gorm:"column:company_name;size:255"`
	JobTitle              string `json:"job_title" gorm:"column:job_title;size:255"`
	JobDescription        string `json:"job_description" gorm:"column:job_description;type:text"`
	WorkLocation          string `json:"work_location" gorm:"column:work_location;size:255"`
	MonthlyIncome         int    `json:"monthly_income" gorm:"column:monthly_income"`
	MonthlyDrinkingBudget int    `json:"monthly_drinking_budget" gorm:"column:monthly_drinking_budget"`
	ResidenceType         string `json:"residence_type" gorm:"column:residence_type;size:255"`
	NearestStation        string `json:"nearest_station" gorm:"column:nearest_station;size:255"`
	HasLover              bool   `json:"has_lover" gorm:"column:has_lover"`
	MaritalStatus         string `json:"marital_status" gorm:"column:marital_status;size:255"`
	ChildrenInfo          string `json:"children_info" gorm:"column:children_info;size:255"`

	Customer *Customer `json:"-" gorm:"foreignKey:CustomerId;constraint:OnDelete:CASCADE"`
}

func (CustomerDetail) TableName() string {
	return "customers_detail"
}
