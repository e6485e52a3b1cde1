package cms_service

import (
	"ttland-cms/db"
	"ttland-cms/inout"
	"ttland-cms/model"

	"gorm.io/gorm"
)

// CustomerDetailService 一对一扩展表，所有操作以 customer_id 为键
type CustomerDetailService struct{}

func (s *CustomerDetailService) List() ([]model.CustomerDetail, error) {
	data := make([]model.CustomerDetail, 0)
	err := db.Dao.Find(&data).Error
	return data, err
}

func (s *CustomerDetailService) Get(customerId string) (*model.CustomerDetail, error) {
	var detail model.CustomerDetail
	if err := db.Dao.First(&detail, "customer_id = ?", customerId).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *CustomerDetailService) Create(req inout.CustomerDetailReq) (*model.CustomerDetail, error) {
	if ok, err := exists(&model.Customer{}, req.Customer); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalidPk("customer")
	}

	var count int64
	if err := db.Dao.Model(&model.CustomerDetail{}).Where("customer_id = ?", req.Customer).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &FieldError{Field: "customer", Message: "detail for this customer already exists."}
	}

	detail := model.CustomerDetail{
		CustomerId:            req.Customer,
		BloodType:             req.BloodType,
		Birthplace:            req.Birthplace,
		AppearanceMemo:        req.AppearanceMemo,
		CompanyName:           req.CompanyName,
		JobTitle:              req.JobTitle,
		JobDescription:        req.JobDescription,
		WorkLocation:          req.WorkLocation,
		MonthlyIncome:         *req.MonthlyIncome,
		MonthlyDrinkingBudget: *req.MonthlyDrinkingBudget,
		ResidenceType:         req.ResidenceType,
		NearestStation:        req.NearestStation,
		HasLover:              *req.HasLover,
		MaritalStatus:         req.MaritalStatus,
		ChildrenInfo:          req.ChildrenInfo,
	}

	if err := db.Dao.Create(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update 整体更新，不允许改挂靠客人：body 中的 customer 必须与路径一致
func (s *CustomerDetailService) Update(customerId string, req inout.CustomerDetailReq) (*model.CustomerDetail, error) {
	if req.Customer != customerId {
		return nil, &FieldError{Field: "customer", Message: "customer does not match the URL."}
	}

	detail, err := s.Get(customerId)
	if err != nil {
		return nil, err
	}

	detail.BloodType = req.BloodType
	detail.Birthplace = req.Birthplace
	detail.AppearanceMemo = req.AppearanceMemo
	detail.CompanyName = req.CompanyName
	detail.JobTitle = req.JobTitle
	detail.JobDescription = req.JobDescription
	detail.WorkLocation = req.WorkLocation
	detail.MonthlyIncome = *req.MonthlyIncome
	detail.MonthlyDrinkingBudget = *req.MonthlyDrinkingBudget
	detail.ResidenceType = req.ResidenceType
	detail.NearestStation = req.NearestStation
	detail.HasLover = *req.HasLover
	detail.MaritalStatus = req.MaritalStatus
	detail.ChildrenInfo = req.ChildrenInfo

	if err := db.Dao.Save(detail).Error; err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *CustomerDetailService) Patch(customerId string, req inout.CustomerDetailPatchReq) (*model.CustomerDetail, error) {
	detail, err := s.Get(customerId)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.BloodType != nil {
		updates["blood_type"] = *req.BloodType
	}
	if req.Birthplace != nil {
		updates["birthplace"] = *req.Birthplace
	}
	if req.AppearanceMemo != nil {
		updates["appearance_memo"] = *req.AppearanceMemo
	}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.JobTitle != nil {
		updates["job_title"] = *req.JobTitle
	}
	if req.JobDescription != nil {
		updates["job_description"] = *req.JobDescription
	}
	if req.WorkLocation != nil {
		updates["work_location"] = *req.WorkLocation
	}
	if req.MonthlyIncome != nil {
		updates["monthly_income"] = *req.MonthlyIncome
	}
	if req.MonthlyDrinkingBudget != nil {
		updates["monthly_drinking_budget"] = *req.MonthlyDrinkingBudget
	}
	if req.ResidenceType != nil {
		updates["residence_type"] = *req.ResidenceType
	}
	if req.NearestStation != nil {
		updates["nearest_station"] = *req.NearestStation
	}
	if req.HasLover != nil {
		updates["has_lover"] = *req.HasLover
	}
	if req.MaritalStatus != nil {
		updates["marital_status"] = *req.MaritalStatus
	}
	if req.ChildrenInfo != nil {
		updates["children_info"] = *req.ChildrenInfo
	}

	if len(updates) > 0 {
		if err := db.Dao.Model(detail).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *CustomerDetailService) Delete(customerId string) error {
	result := db.Dao.Delete(&model.CustomerDetail{}, "customer_id = ?", customerId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
