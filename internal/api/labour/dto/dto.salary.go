package dto

// SalaryCreateInput dữ liệu tạo tay một bản ghi lương
type SalaryCreateInput struct {
	LabourerID       string  `json:"labourerId" validate:"required,object_id" transform:"str_objectid,required"`
	StartPeriod      string  `json:"startPeriod" validate:"required" transform:"str_time,format=2006-01-02,required"`
	EndPeriod        string  `json:"endPeriod" validate:"required" transform:"str_time,format=2006-01-02,required"`
	TotalDaysPresent int64   `json:"totalDaysPresent" validate:"gte=0"`
	DailyWage        float64 `json:"dailyWage" validate:"gte=0"`
	TotalSalary      float64 `json:"totalSalary" validate:"gte=0"`
	Status           string  `json:"status" validate:"omitempty,oneof=pending paid" transform:"str_string,default=pending,optional"`
}

// SalaryUpdateInput dữ liệu cập nhật bản ghi lương
type SalaryUpdateInput struct {
	TotalDaysPresent int64   `json:"totalDaysPresent" validate:"omitempty,gte=0"`
	DailyWage        float64 `json:"dailyWage" validate:"omitempty,gte=0"`
	TotalSalary      float64 `json:"totalSalary" validate:"omitempty,gte=0"`
	Status           string  `json:"status" validate:"omitempty,oneof=pending paid"`
	PaymentDate      string  `json:"paymentDate" validate:"omitempty" transform:"str_time,format=2006-01-02,optional"`
	PayslipURL       string  `json:"payslipUrl" validate:"omitempty,url"`
}

// SalaryGenerateInput dữ liệu sinh lương hàng loạt cho một kỳ công.
// Một mức DailyWage áp đồng loạt cho mọi bản ghi sinh ra trong lần gọi.
// Con trỏ để mức 0 vẫn qua được required; thiếu dailyWage bị từ chối.
type SalaryGenerateInput struct {
	StartPeriod string   `json:"startPeriod" validate:"required"`
	EndPeriod   string   `json:"endPeriod" validate:"required"`
	DailyWage   *float64 `json:"dailyWage" validate:"required,gte=0"`
}

// SalaryMarkPaidInput dữ liệu đánh dấu đã thanh toán
type SalaryMarkPaidInput struct {
	PaymentDate string `json:"paymentDate" validate:"omitempty"`
	PayslipURL  string `json:"payslipUrl" validate:"omitempty,url"`
}
