package user

type CreateUserInput struct {
	Username     string `json:"username" binding:"required,min=3,max=50"`
	Password     string `json:"password" binding:"required,min=6"`
	FullName     string `json:"full_name" binding:"omitempty,max=100"`
	Email        string `json:"email" binding:"omitempty,email"`
	MembershipNo string `json:"membership_no" binding:"omitempty,max=30"`
	Level        string `json:"level" binding:"omitempty,oneof=muqam dila zone national"`
	MuqamID      *uint  `json:"muqam_id"`
	DilaID       *uint  `json:"dila_id"`
	ZoneID       *uint  `json:"zone_id"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateUserInput struct {
	OldPassword *string `json:"old_password"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
	FullName    *string `json:"full_name" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Level       *string `json:"level" binding:"omitempty,oneof=muqam dila zone national"`
	MuqamID     *uint   `json:"muqam_id"`
	DilaID      *uint   `json:"dila_id"`
	ZoneID      *uint   `json:"zone_id"`
}
