package inout

// UserCreateReq 创建用户，password 只写不读
type UserCreateReq struct {
	Username string `json:"username" binding:"omitempty,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=Cast Staff Manager Admin"`
}

// UserUpdateReq 整体更新用户。password 为空时不改动已存哈希
type UserUpdateReq struct {
	Username string `json:"username" binding:"omitempty,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"omitempty,oneof=Cast Staff Manager Admin"`
}

// UserPatchReq 部分更新用户
type UserPatchReq struct {
	Username *string `json:"username" binding:"omitempty,max=255"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Password *string `json:"password"`
	Role     *string `json:"role" binding:"omitempty,oneof=Cast Staff Manager Admin"`
}
