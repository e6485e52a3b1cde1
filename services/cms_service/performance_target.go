package cms_service

import (
	"ttland-cms/db"
	"ttland-cms/inout"
	"ttland-cms/model"

	"gorm.io/gorm"
)

type PerformanceTargetService struct{}

func (s *PerformanceTargetService) List() ([]model.PerformanceTarget, error) {
	data := make([]model.PerformanceTarget, 0)
	err := db.Dao.Find(&data).Error
	return data, err
}

func (s *PerformanceTargetService) Get(id string) (*model.PerformanceTarget, error) {
	var target model.PerformanceTarget
	if err := db.Dao.First(&target, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

func (s *PerformanceTargetService) Create(req inout.PerformanceTargetReq) (*model.PerformanceTarget, error) {
	if ok, err := exists(&model.StaffMember{}, req.Staff); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalidPk("staff")
	}

	target := model.PerformanceTarget{
		StaffId:      req.Staff,
		TargetAmount: *req.TargetAmount,
		TargetType:   req.TargetType,
		TargetDate:   *req.TargetDate,
	}

	if err := db.Dao.Create(&target).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

func (s *PerformanceTargetService) Update(id string, req inout.PerformanceTargetReq) (*model.PerformanceTarget, error) {
	target, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if ok, err := exists(&model.StaffMember{}, req.Staff); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalidPk("staff")
	}

	target.StaffId = req.Staff
	target.TargetAmount = *req.TargetAmount
	target.TargetType = req.TargetType
	target.TargetDate = *req.TargetDate

	if err := db.Dao.Save(target).Error; err != nil {
		return nil, err
	}
	return target, nil
}

func (s *PerformanceTargetService) Patch(id string, req inout.PerformanceTargetPatchReq) (*model.PerformanceTarget, error) {
	target, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Staff != nil {
		if ok, err := exists(&model.StaffMember{}, *req.Staff); err != nil {
			return nil, err
		} else if !ok {
			return nil, invalidPk("staff")
		}
		updates["staff_id"] = *req.Staff
	}
	if req.TargetAmount != nil {
		updates["target_amount"] = *req.TargetAmount
	}
	if req.TargetType != nil {
		updates["target_type"] = *req.TargetType
	}
	if req.TargetDate != nil {
		updates["target_date"] = *req.TargetDate
	}

	if len(updates) > 0 {
		if err := db.Dao.Model(target).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return target, nil
}

func (s *PerformanceTargetService) Delete(id string) error {
	result := db.Dao.Delete(&model.PerformanceTarget{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
