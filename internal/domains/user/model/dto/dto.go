package dto

import (
	"time"

	"hotelier/internal/domains/user/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username string  `json:"username"  validate:"required,min=3,max=50"`
	FullName string  `json:"full_name" validate:"required,max=255"`
	Email    string  `json:"email"     validate:"required,email"`
	Password string  `json:"password"  validate:"required,min=8"`
	Role     string  `json:"role"      validate:"required,oneof=ADMIN RECEPTIONIST ACCOUNTANT"`
	BranchID *string `json:"branch_id,omitempty"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	return model.User{
		ID:       uuid.NewString(),
		Username: r.Username,
		FullName: r.FullName,
		Email:    r.Email,
		Password: hashedPassword,
		Role:     r.Role,
		BranchID: r.BranchID,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateUserRequest struct {
	FullName string  `db:"full_name" json:"full_name" validate:"omitempty,max=255"`
	Email    string  `db:"email"     json:"email"     validate:"omitempty,email"`
	Role     string  `db:"role"      json:"role"      validate:"omitempty,oneof=ADMIN RECEPTIONIST ACCOUNTANT"`
	BranchID *string `db:"branch_id" json:"branch_id" validate:"omitempty"`
	Active   *bool   `db:"active"    json:"active"    validate:"omitempty"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	BranchID  *string `json:"branch_id,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Username = mod.Username
	r.FullName = mod.FullName
	r.Email = mod.Email
	r.Role = mod.Role
	r.BranchID = mod.BranchID
	r.Active = mod.Active

	if mod.LastLogin != nil {
		formatted := timezone.Format(*mod.LastLogin, constant.DateFormat)
		r.LastLogin = &formatted
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
