package cms_service

import (
	"ttland-cms/db"
	"ttland-cms/inout"
	"ttland-cms/model"

	"gorm.io/gorm"
)

// CustomerPreferenceService 一对一扩展表，所有操作以 customer_id 为键
type CustomerPreferenceService struct{}

func (s *CustomerPreferenceService) List() ([]model.CustomerPreference, error) {
	data := make([]model.CustomerPreference, 0)
	err := db.Dao.Find(&data).Error
	return data, err
}

func (s *CustomerPreferenceService) Get(customerId string) (*model.CustomerPreference, error) {
	var pref model.CustomerPreference
	if err := db.Dao.First(&pref, "customer_id = ?", customerId).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

func (s *CustomerPreferenceService) Create(req inout.CustomerPreferenceReq) (*model.CustomerPreference, error) {
	if ok, err := exists(&model.Customer{}, req.Customer); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalidPk("customer")
	}

	var count int64
	if err := db.Dao.Model(&model.CustomerPreference{}).Where("customer_id = ?", req.Customer).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &FieldError{Field: "customer", Message: "preference for this customer already exists."}
	}

	pref := model.CustomerPreference{
		CustomerId:      req.Customer,
		AlcoholStrength: req.AlcoholStrength,
		FavoriteFood:    req.FavoriteFood,
		DislikeFood:     req.DislikeFood,
		Hobby:           req.Hobby,
		FavoriteBrand:   req.FavoriteBrand,
	}

	if err := db.Dao.Create(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// Update 整体更新，不允许改挂靠客人：body 中的 customer 必须与路径一致
func (s *CustomerPreferenceService) Update(customerId string, req inout.CustomerPreferenceReq) (*model.CustomerPreference, error) {
	if req.Customer != customerId {
		return nil, &FieldError{Field: "customer", Message: "customer does not match the URL."}
	}

	pref, err := s.Get(customerId)
	if err != nil {
		return nil, err
	}

	pref.AlcoholStrength = req.AlcoholStrength
	pref.FavoriteFood = req.FavoriteFood
	pref.DislikeFood = req.DislikeFood
	pref.Hobby = req.Hobby
	pref.FavoriteBrand = req.FavoriteBrand

	if err := db.Dao.Save(pref).Error; err != nil {
		return nil, err
	}
	return pref, nil
}

func (s *CustomerPreferenceService) Patch(customerId string, req inout.CustomerPreferencePatchReq) (*model.CustomerPreference, error) {
	pref, err := s.Get(customerId)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.AlcoholStrength != nil {
		updates["alcohol_strength"] = *req.AlcoholStrength
	}
	if req.FavoriteFood != nil {
		updates["favorite_food"] = *req.FavoriteFood
	}
	if req.DislikeFood != nil {
		updates["dislike_food"] = *req.DislikeFood
	}
	if req.Hobby != nil {
		updates["hobby"] = *req.Hobby
	}
	if req.FavoriteBrand != nil {
		updates["favorite_brand"] = *req.FavoriteBrand
	}

	if len(updates) > 0 {
		if err := db.Dao.Model(pref).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return pref, nil
}

func (s *CustomerPreferenceService) Delete(customerId string) error {
	result := db.Dao.Delete(&model.CustomerPreference{}, "customer_id = ?", customerId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
