package inout

// StoreReq 创建/整体更新店铺
type StoreReq struct {
	Name      string `json:"name" binding:"omitempty,max=255"`
	StoreType string `json:"store_type" binding:"omitempty,oneof='Con Cafe' Bar 'Host Club'"`
	Address   string `json:"address" binding:"required"`
	IsActive  *bool  `json:"is_active" binding:"required"`
}

// StorePatchReq 部分更新店铺，缺省字段保持原值
type StorePatchReq struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	StoreType *string `json:"store_type" binding:"omitempty,oneof='Con Cafe' Bar 'Host Club'"`
	Address   *string `json:"address"`
	IsActive  *bool   `json:"is_active"`
}
