package cms_service

import (
	"ttland-cms/db"
	"ttland-cms/inout"
	"ttland-cms/model"

	"gorm.io/gorm"
)

type CustomerService struct{}

func (s *CustomerService) List() ([]model.Customer, error) {
	data := make([]model.Customer, 0)
	err := db.Dao.Find(&data).Error
	return data, err
}

func (s *CustomerService) Get(id string) (*model.Customer, error) {
	var customer model.Customer
	if err := db.Dao.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Create(req inout.CustomerReq) (*model.Customer, error) {
	if ok, err := exists(&model.Store{}, req.Store); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalidPk("store")
	}

	customer := model.Customer{
		StoreId:     req.Store,
		Name:        req.Name,
		FirstVisit:  *req.FirstVisit,
		ContactInfo: req.ContactInfo,
		Preferences: req.Preferences,
		TotalSpend:  *req.TotalSpend,
	}

	if err := db.Dao.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Update(id string, req inout.CustomerReq) (*model.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if ok, err := exists(&model.Store{}, req.Store); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalidPk("store")
	}

	customer.StoreId = req.Store
	customer.Name = req.Name
	customer.FirstVisit = *req.FirstVisit
	customer.ContactInfo = req.ContactInfo
	customer.Preferences = req.Preferences
	customer.TotalSpend = *req.TotalSpend

	if err := db.Dao.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Patch(id string, req inout.CustomerPatchReq) (*model.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Store != nil {
		if ok, err := exists(&model.Store{}, *req.Store); err != nil {
			return nil, err
		} else if !ok {
			return nil, invalidPk("store")
		}
		updates["store_id"] = *req.Store
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.FirstVisit != nil {
		updates["first_visit"] = *req.FirstVisit
	}
	if req.ContactInfo != nil {
		updates["contact_info"] = req.ContactInfo
	}
	if req.Preferences != nil {
		updates["preferences"] = req.Preferences
	}
	if req.TotalSpend != nil {
		updates["total_spend"] = *req.TotalSpend
	}

	if len(updates) > 0 {
		if err := db.Dao.Model(customer).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return customer, nil
}

func (s *CustomerService) Delete(id string) error {
	result := db.Dao.Delete(&model.Customer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
