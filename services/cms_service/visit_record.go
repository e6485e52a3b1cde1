package cms_service

import (
	"ttland-cms/db"
	"ttland-cms/inout"
	"ttland-cms/model"

	"gorm.io/gorm"
)

type VisitRecordService struct{}

func (s *VisitRecordService) List() ([]model.VisitRecord, error) {
	data := make([]model.VisitRecord, 0)
	err := db.Dao.Find(&data).Error
	return data, err
}

func (s *VisitRecordService) Get(id string) (*model.VisitRecord, error) {
	var record model.VisitRecord
	if err := db.Dao.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *VisitRecordService) Create(req inout.VisitRecordReq) (*model.VisitRecord, error) {
	if err := s.checkRefs(req.Customer, req.Cast); err != nil {
		return nil, err
	}

	record := model.VisitRecord{
		CustomerId:     req.Customer,
		CastId:         req.Cast,
		VisitDate:      *req.VisitDate,
		Spending:       *req.Spending,
		PaymentMethod:  req.PaymentMethod,
		EntryTime:      *req.EntryTime,
		ExitTime:       *req.ExitTime,
		Accompanied:    *req.Accompanied,
		Companions:     req.Companions,
		Memo:           req.Memo,
		UnpaidAmount:   *req.UnpaidAmount,
		ReceivedAmount: *req.ReceivedAmount,
		UnpaidDate:     *req.UnpaidDate,
		Receipt:        *req.Receipt,
	}

	if err := db.Dao.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *VisitRecordService) Update(id string, req inout.VisitRecordReq) (*model.VisitRecord, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkRefs(req.Customer, req.Cast); err != nil {
		return nil, err
	}

	record.CustomerId = req.Customer
	record.CastId = req.Cast
	record.VisitDate = *req.VisitDate
	record.Spending = *req.Spending
	record.PaymentMethod = req.PaymentMethod
	record.EntryTime = *req.EntryTime
	record.ExitTime = *req.ExitTime
	record.Accompanied = *req.Accompanied
	record.Companions = req.Companions
	record.Memo = req.Memo
	record.UnpaidAmount = *req.UnpaidAmount
	record.ReceivedAmount = *req.ReceivedAmount
	record.UnpaidDate = *req.UnpaidDate
	record.Receipt = *req.Receipt

	if err := db.Dao.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *VisitRecordService) Patch(id string, req inout.VisitRecordPatchReq) (*model.VisitRecord, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Customer != nil {
		if ok, err := exists(&model.Customer{}, *req.Customer); err != nil {
			return nil, err
		} else if !ok {
			return nil, invalidPk("customer")
		}
		updates["customer_id"] = *req.Customer
	}
	if req.Cast != nil {
		if ok, err := exists(&model.StaffMember{}, *req.Cast); err != nil {
			return nil, err
		} else if !ok {
			return nil, invalidPk("cast")
		}
		updates["cast_id"] = *req.Cast
	}
	if req.VisitDate != nil {
		updates["visit_date"] = *req.VisitDate
	}
	if req.Spending != nil {
		updates["spending"] = *req.Spending
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.EntryTime != nil {
		updates["entry_time"] = *req.EntryTime
	}
	if req.ExitTime != nil {
		updates["exit_time"] = *req.ExitTime
	}
	if req.Accompanied != nil {
		updates["accompanied"] = *req.Accompanied
	}
	if req.Companions != nil {
		updates["companions"] = *req.Companions
	}
	if req.Memo != nil {
		updates["memo"] = *req.Memo
	}
	if req.UnpaidAmount != nil {
		updates["unpaid_amount"] = *req.UnpaidAmount
	}
	if req.ReceivedAmount != nil {
		updates["received_amount"] = *req.ReceivedAmount
	}
	if req.UnpaidDate != nil {
		updates["unpaid_date"] = *req.UnpaidDate
	}
	if req.Receipt != nil {
		updates["receipt"] = *req.Receipt
	}

	if len(updates) > 0 {
		if err := db.Dao.Model(record).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return record, nil
}

func (s *VisitRecordService) Delete(id string) error {
	result := db.Dao.Delete(&model.VisitRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *VisitRecordService) checkRefs(customerId, castId string) error {
	if ok, err := exists(&model.Customer{}, customerId); err != nil {
		return err
	} else if !ok {
		return invalidPk("customer")
	}
	if ok, err := exists(&model.StaffMember{}, castId); err != nil {
		return err
	} else if !ok {
		return invalidPk("cast")
	}
	return nil
}
