package dto

// LeaveCreateInput dữ liệu tạo đơn xin nghỉ
type LeaveCreateInput struct {
	LabourerID string `json:"labourerId" validate:"required,object_id" transform:"str_objectid,required"`
	StartDate  string `json:"startDate" validate:"required" transform:"str_time,format=2006-01-02,required"`
	EndDate    string `json:"endDate" validate:"required" transform:"str_time,format=2006-01-02,required"`
	Reason     string `json:"reason" validate:"omitempty,no_xss,max=500"`
}

// LeaveUpdateInput dữ liệu cập nhật đơn xin nghỉ (chỉ khi còn pending)
type LeaveUpdateInput struct {
	StartDate string `json:"startDate" validate:"omitempty" transform:"str_time,format=2006-01-02,optional"`
	EndDate   string `json:"endDate" validate:"omitempty" transform:"str_time,format=2006-01-02,optional"`
	Reason    string `json:"reason" validate:"omitempty,no_xss,max=500"`
}
