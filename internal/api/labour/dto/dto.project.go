package dto

// ProjectCreateInput dữ liệu tạo mới dự án
type ProjectCreateInput struct {
	Name      string `json:"name" validate:"required,no_xss"`
	Location  string `json:"location" validate:"omitempty,no_xss"`
	Status    string `json:"status" validate:"omitempty,oneof=active on-hold completed" transform:"str_string,default=active,optional"`
	StartDate string `json:"startDate" validate:"omitempty" transform:"str_time,format=2006-01-02,optional"`
	EndDate   string `json:"endDate" validate:"omitempty" transform:"str_time,format=2006-01-02,optional"`
}

// ProjectUpdateInput dữ liệu cập nhật dự án
type ProjectUpdateInput struct {
	Name      string `json:"name" validate:"omitempty,no_xss"`
	Location  string `json:"location" validate:"omitempty,no_xss"`
	Status    string `json:"status" validate:"omitempty,oneof=active on-hold completed"`
	StartDate string `json:"startDate" validate:"omitempty" transform:"str_time,format=2006-01-02,optional"`
	EndDate   string `json:"endDate" validate:"omitempty" transform:"str_time,format=2006-01-02,optional"`
}
