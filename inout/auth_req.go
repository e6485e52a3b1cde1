package inout

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRes struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	UserId  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

type RefreshReq struct {
	Refresh string `json:"refresh" binding:"required"`
}

type RefreshRes struct {
	Access string `json:"access"`
}
