// Package dto - các cấu trúc đầu vào của domain labour.
package dto

// LabourerCreateInput dữ liệu tạo mới lao động
type LabourerCreateInput struct {
	Name          string `json:"name" validate:"required,no_xss"`
	ContactNumber string `json:"contactNumber" validate:"omitempty,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	IsActive      *bool  `json:"isActive" validate:"omitempty"`
}

// LabourerUpdateInput dữ liệu cập nhật lao động
type LabourerUpdateInput struct {
	Name          string `json:"name" validate:"omitempty,no_xss"`
	ContactNumber string `json:"contactNumber" validate:"omitempty,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	IsActive      *bool  `json:"isActive" validate:"omitempty"`
}
