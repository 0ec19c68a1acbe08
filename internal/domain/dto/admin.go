package dto

type CreateDistrictAdminRequest struct {
	DistrictID int64  `json:"district_id" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
}

type UpdateDistrictAdminRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

type CreateNotificationRequest struct {
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Audience string `json:"audience" validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=low normal high"`
	Schedule bool   `json:"schedule"`
}
