package cms_service

import (
	"ttland-cms/db"
	"ttland-cms/inout"
	"ttland-cms/model"

	"gorm.io/gorm"
)

type DailySummaryService struct{}

func (s *DailySummaryService) List() ([]model.DailySummary, error) {
	data := make([]model.DailySummary, 0)
	err := db.Dao.Find(&data).Error
	return data, err
}

func (s *DailySummaryService) Get(id string) (*model.DailySummary, error) {
	var summary model.DailySummary
	if err := db.Dao.First(&summary, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *DailySummaryService) Create(req inout.DailySummaryReq) (*model.DailySummary, error) {
	if ok, err := exists(&model.Store{}, req.Store); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalidPk("store")
	}

	summary := model.DailySummary{
		StoreId:       req.Store,
		ReportDate:    *req.ReportDate,
		TotalSales:    *req.TotalSales,
		TotalExpenses: *req.TotalExpenses,
		LaborCosts:    *req.LaborCosts,
		Notes:         req.Notes,
	}

	if err := db.Dao.Create(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *DailySummaryService) Update(id string, req inout.DailySummaryReq) (*model.DailySummary, error) {
	summary, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if ok, err := exists(&model.Store{}, req.Store); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalidPk("store")
	}

	summary.StoreId = req.Store
	summary.ReportDate = *req.ReportDate
	summary.TotalSales = *req.TotalSales
	summary.TotalExpenses = *req.TotalExpenses
	summary.LaborCosts = *req.LaborCosts
	summary.Notes = req.Notes

	if err := db.Dao.Save(summary).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *DailySummaryService) Patch(id string, req inout.DailySummaryPatchReq) (*model.DailySummary, error) {
	summary, err := s.Get(id)
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
	if req.ReportDate != nil {
		updates["report_date"] = *req.ReportDate
	}
	if req.TotalSales != nil {
		updates["total_sales"] = *req.TotalSales
	}
	if req.TotalExpenses != nil {
		updates["total_expenses"] = *req.TotalExpenses
	}
	if req.LaborCosts != nil {
		updates["labor_costs"] = *req.LaborCosts
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := db.Dao.Model(summary).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return summary, nil
}

func (s *DailySummaryService) Delete(id string) error {
	result := db.Dao.Delete(&model.DailySummary{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
