package dto

// PerformanceCreateInput dữ liệu tạo một lượt đánh giá hiệu suất.
// PerformanceScore là con trỏ để điểm 0 vẫn qua được required.
type PerformanceCreateInput struct {
	LabourerID       string   `json:"labourerId" validate:"required,object_id" transform:"str_objectid,required"`
	ProjectID        string   `json:"projectId" validate:"required,object_id" transform:"str_objectid,required"`
	Date             string   `json:"date" validate:"required" transform:"str_time,format=2006-01-02,required"`
	PerformanceScore *float64 `json:"performanceScore" validate:"required,gte=0,lte=100"`
	Remarks          string   `json:"remarks" validate:"required,no_xss,max=1000"`
}

// PerformanceUpdateInput dữ liệu sửa một lượt đánh giá hiệu suất.
// Chỉ các trường khai báo ở đây được phép sửa, mọi key khác trong body bị bỏ qua.
type PerformanceUpdateInput struct {
	LabourerID       string   `json:"labourerId" validate:"omitempty,object_id" transform:"str_objectid,optional"`
	ProjectID        string   `json:"projectId" validate:"omitempty,object_id" transform:"str_objectid,optional"`
	Date             string   `json:"date" validate:"omitempty" transform:"str_time,format=2006-01-02,optional"`
	PerformanceScore *float64 `json:"performanceScore" validate:"omitempty,gte=0,lte=100"`
	Remarks          string   `json:"remarks" validate:"omitempty,no_xss,max=1000"`
}
