package dto

// AttendanceCreateInput dữ liệu chấm công một lượt.
// Date nhận định dạng "YYYY-MM-DD" và được chuẩn hóa về 00:00:00 UTC khi lưu.
type AttendanceCreateInput struct {
	LabourerID string `json:"labourerId" validate:"required,object_id" transform:"str_objectid,required"`
	ProjectID  string `json:"projectId" validate:"required,object_id" transform:"str_objectid,required"`
	Date       string `json:"date" validate:"required" transform:"str_time,format=2006-01-02,required"`
	Shift      string `json:"shift" validate:"required,oneof=morning evening night"`
	Status     string `json:"status" validate:"required,oneof=present absent half-day"`
	MarkedBy   string `json:"markedBy" validate:"omitempty,object_id" transform:"str_objectid,optional"`
}

// AttendanceUpdateInput dữ liệu sửa một lượt chấm công.
// Chỉ các trường khai báo ở đây được phép sửa, mọi key khác trong body bị bỏ qua.
type AttendanceUpdateInput struct {
	LabourerID string `json:"labourerId" validate:"omitempty,object_id" transform:"str_objectid,optional"`
	ProjectID  string `json:"projectId" validate:"omitempty,object_id" transform:"str_objectid,optional"`
	Date       string `json:"date" validate:"omitempty" transform:"str_time,format=2006-01-02,optional"`
	Shift      string `json:"shift" validate:"omitempty,oneof=morning evening night"`
	Status     string `json:"status" validate:"omitempty,oneof=present absent half-day"`
	MarkedBy   string `json:"markedBy" validate:"omitempty,object_id" transform:"str_objectid,optional"`
}

// AttendanceBulkInput dữ liệu chấm công hàng loạt.
// Không dive validate từng record ở đây: lỗi của một record không được
// làm hỏng cả batch, service tự kiểm tra từng phần tử và báo lỗi theo index.
type AttendanceBulkInput struct {
	Records []AttendanceCreateInput `json:"records" validate:"required,min=1"`
}
