package cms_service

import (
	"ttland-cms/db"
	"ttland-cms/inout"
	"ttland-cms/model"
	"ttland-cms/pkg/security"

	"gorm.io/gorm"
)

type UserService struct{}

func (s *UserService) List() ([]model.CmsUser, error) {
	data := make([]model.CmsUser, 0)
	err := db.Dao.Find(&data).Error
	return data, err
}

func (s *UserService) Get(id string) (*model.CmsUser, error) {
	var user model.CmsUser
	if err := db.Dao.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail 登录流程用，按邮箱精确匹配
func (s *UserService) GetByEmail(email string) (*model.CmsUser, error) {
	var user model.CmsUser
	if err := db.Dao.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 创建用户，明文密码只经过哈希后入库
func (s *UserService) Create(req inout.UserCreateReq) (*model.CmsUser, error) {
	if taken, err := s.emailTaken(req.Email, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, &FieldError{Field: "email", Message: "user with this email already exists."}
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, &FieldError{Field: "password", Message: err.Error()}
	}

	user := model.CmsUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if user.Role == "" {
		user.Role = model.RoleCast
	}

	if err := db.Dao.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update 整体更新。password 为空时保留原哈希
func (s *UserService) Update(id string, req inout.UserUpdateReq) (*model.CmsUser, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if taken, err := s.emailTaken(req.Email, id); err != nil {
		return nil, err
	} else if taken {
		return nil, &FieldError{Field: "email", Message: "user with this email already exists."}
	}

	user.Username = req.Username
	user.Email = req.Email
	// 整体更新：缺省 role 回落到默认值，而不是保留原值
	user.Role = req.Role
	if user.Role == "" {
		user.Role = model.RoleCast
	}
	if req.Password != "" {
		hash, err := security.HashPassword(req.Password)
		if err != nil {
			return nil, &FieldError{Field: "password", Message: err.Error()}
		}
		user.PasswordHash = hash
	}

	if err := db.Dao.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Patch(id string, req inout.UserPatchReq) (*model.CmsUser, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		if taken, err := s.emailTaken(*req.Email, id); err != nil {
			return nil, err
		} else if taken {
			return nil, &FieldError{Field: "email", Message: "user with this email already exists."}
		}
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	// 传了空字符串的 password 视同未传，不清空原哈希
	if req.Password != nil && *req.Password != "" {
		hash, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, &FieldError{Field: "password", Message: err.Error()}
		}
		updates["password_hash"] = hash
	}

	if len(updates) > 0 {
		if err := db.Dao.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *UserService) Delete(id string) error {
	result := db.Dao.Delete(&model.CmsUser{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// emailTaken 邮箱是否已被其他用户占用
func (s *UserService) emailTaken(email, excludeId string) (bool, error) {
	query := db.Dao.Model(&model.CmsUser{}).Where("email = ?", email)
	if excludeId != "" {
		query = query.Where("id <> ?", excludeId)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
