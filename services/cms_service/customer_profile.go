package cms_service

import (
	"ttland-cms/db"
	"ttland-cms/inout"
	"ttland-cms/model"

	"gorm.io/gorm"
)

// CustomerProfileService 一对一扩展表，所有操作以 customer_id 为键
type CustomerProfileService struct{}

func (s *CustomerProfileService) List() ([]model.CustomerProfile, error) {
	data := make([]model.CustomerProfile, 0)
	err := db.Dao.Find(&data).Error
	return data, err
}

func (s *CustomerProfileService) Get(customerId string) (*model.CustomerProfile, error) {
	var profile model.CustomerProfile
	if err := db.Dao.First(&profile, "customer_id = ?", customerId).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *CustomerProfileService) Create(req inout.CustomerProfileReq) (*model.CustomerProfile, error) {
	if ok, err := exists(&model.Customer{}, req.Customer); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalidPk("customer")
	}

	// 一对一约束：同一客人最多一行，冲突时报错而不是覆盖
	var count int64
	if err := db.Dao.Model(&model.CustomerProfile{}).Where("customer_id = ?", req.Customer).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &FieldError{Field: "customer", Message: "profile for this customer already exists."}
	}

	profile := model.CustomerProfile{
		CustomerId:    req.Customer,
		Birthday:      *req.Birthday,
		Zodiac:        req.Zodiac,
		AnimalFortune: req.AnimalFortune,
	}

	if err := db.Dao.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update 整体更新，不允许改挂靠客人：body 中的 customer 必须与路径一致
func (s *CustomerProfileService) Update(customerId string, req inout.CustomerProfileReq) (*model.CustomerProfile, error) {
	if req.Customer != customerId {
		return nil, &FieldError{Field: "customer", Message: "customer does not match the URL."}
	}

	profile, err := s.Get(customerId)
	if err != nil {
		return nil, err
	}

	profile.Birthday = *req.Birthday
	profile.Zodiac = req.Zodiac
	profile.AnimalFortune = req.AnimalFortune

	if err := db.Dao.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *CustomerProfileService) Patch(customerId string, req inout.CustomerProfilePatchReq) (*model.CustomerProfile, error) {
	profile, err := s.Get(customerId)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Birthday != nil {
		updates["birthday"] = *req.Birthday
	}
	if req.Zodiac != nil {
		updates["zodiac"] = *req.Zodiac
	}
	if req.AnimalFortune != nil {
		updates["animal_fortune"] = *req.AnimalFortune
	}

	if len(updates) > 0 {
		if err := db.Dao.Model(profile).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (s *CustomerProfileService) Delete(customerId string) error {
	result := db.Dao.Delete(&model.CustomerProfile{}, "customer_id = ?", customerId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
