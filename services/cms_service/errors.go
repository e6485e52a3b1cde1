package cms_service

import (
	"errors"

	"gorm.io/gorm"

	"ttland-cms/db"
)

// FieldError 指向请求中某个字段的校验错误，由接口层转成按字段的 400 响应
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// invalidPk 外键指向的行不存在
func invalidPk(field string) *FieldError {
	return &FieldError{Field: field, Message: "Invalid pk - object does not exist."}
}

// exists 判断指定表中 id 是否存在
func exists(m interface{}, id string) (bool, error) {
	var count int64
	if err := db.Dao.Model(m).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsNotFound 是否为"记录不存在"错误
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
