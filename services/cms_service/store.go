package cms_service

import (
	"ttland-cms/db"
	"ttland-cms/inout"
	"ttland-cms/model"

	"gorm.io/gorm"
)

type StoreService struct{}

func (s *StoreService) List() ([]model.Store, error) {
	data := make([]model.Store, 0)
	err := db.Dao.Find(&data).Error
	return data, err
}

func (s *StoreService) Get(id string) (*model.Store, error) {
	var store model.Store
	if err := db.Dao.First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (s *StoreService) Create(req inout.StoreReq) (*model.Store, error) {
	store := model.Store{
		Name:      req.Name,
		StoreType: req.StoreType,
		Address:   req.Address,
		IsActive:  *req.IsActive,
	}
	applyStoreDefaults(&store)

	if err := db.Dao.Create(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (s *StoreService) Update(id string, req inout.StoreReq) (*model.Store, error) {
	store, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	store.Name = req.Name
	store.StoreType = req.StoreType
	store.Address = req.Address
	store.IsActive = *req.IsActive
	applyStoreDefaults(store)

	if err := db.Dao.Save(store).Error; err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) Patch(id string, req inout.StorePatchReq) (*model.Store, error) {
	store, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.StoreType != nil {
		updates["store_type"] = *req.StoreType
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := db.Dao.Model(store).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return store, nil
}

func (s *StoreService) Delete(id string) error {
	result := db.Dao.Delete(&model.Store{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// applyStoreDefaults 未提供的可选字段取模型默认值
func applyStoreDefaults(store *model.Store) {
	if store.Name == "" {
		store.Name = "TTLAND"
	}
	if store.StoreType == "" {
		store.StoreType = model.StoreTypeConCafe
	}
}
