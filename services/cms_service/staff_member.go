package cms_service

import (
	"ttland-cms/db"
	"ttland-cms/inout"
	"ttland-cms/model"

	"gorm.io/gorm"
)

type StaffMemberService struct{}

func (s *StaffMemberService) List() ([]model.StaffMember, error) {
	data := make([]model.StaffMember, 0)
	err := db.Dao.Find(&data).Error
	return data, err
}

func (s *StaffMemberService) Get(id string) (*model.StaffMember, error) {
	var member model.StaffMember
	if err := db.Dao.First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *StaffMemberService) Create(req inout.StaffMemberReq) (*model.StaffMember, error) {
	if err := s.checkRefs(req.User, req.Store); err != nil {
		return nil, err
	}

	member := model.StaffMember{
		UserId:         req.User,
		StoreId:        req.Store,
		HourlyWage:     *req.HourlyWage,
		CommissionRate: *req.CommissionRate,
		IsOnDuty:       *req.IsOnDuty,
		CheckIn:        *req.CheckIn,
		CheckOut:       *req.CheckOut,
	}

	if err := db.Dao.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *StaffMemberService) Update(id string, req inout.StaffMemberReq) (*model.StaffMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkRefs(req.User, req.Store); err != nil {
		return nil, err
	}

	member.UserId = req.User
	member.StoreId = req.Store
	member.HourlyWage = *req.HourlyWage
	member.CommissionRate = *req.CommissionRate
	member.IsOnDuty = *req.IsOnDuty
	member.CheckIn = *req.CheckIn
	member.CheckOut = *req.CheckOut

	if err := db.Dao.Save(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (s *StaffMemberService) Patch(id string, req inout.StaffMemberPatchReq) (*model.StaffMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.User != nil {
		if ok, err := exists(&model.CmsUser{}, *req.User); err != nil {
			return nil, err
		} else if !ok {
			return nil, invalidPk("user")
		}
		updates["user_id"] = *req.User
	}
	if req.Store != nil {
		if ok, err := exists(&model.Store{}, *req.Store); err != nil {
			return nil, err
		} else if !ok {
			return nil, invalidPk("store")
		}
		updates["store_id"] = *req.Store
	}
	if req.HourlyWage != nil {
		updates["hourly_wage"] = *req.HourlyWage
	}
	if req.CommissionRate != nil {
		updates["commission_rate"] = *req.CommissionRate
	}
	if req.IsOnDuty != nil {
		updates["is_on_duty"] = *req.IsOnDuty
	}
	if req.CheckIn != nil {
		updates["check_in"] = *req.CheckIn
	}
	if req.CheckOut != nil {
		updates["check_out"] = *req.CheckOut
	}

	if len(updates) > 0 {
		if err := db.Dao.Model(member).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return member, nil
}

func (s *StaffMemberService) Delete(id string) error {
	result := db.Dao.Delete(&model.StaffMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *StaffMemberService) checkRefs(userId, storeId string) error {
	if ok, err := exists(&model.CmsUser{}, userId); err != nil {
		return err
	} else if !ok {
		return invalidPk("user")
	}
	if ok, err := exists(&model.Store{}, storeId); err != nil {
		return err
	} else if !ok {
		return invalidPk("store")
	}
	return nil
}
