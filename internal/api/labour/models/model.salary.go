package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái bản ghi lương
const (
	SalaryPending = "pending" // Chưa thanh toán
	SalaryPaid    = "paid"    // Đã thanh toán
)

// Salary là bản ghi lương của một lao động cho một kỳ công.
// Không đặt unique index trên (labourerId, startPeriod, endPeriod): bộ sinh lương
// tự lọc kỳ đã có trước khi ghi, còn tạo tay qua CRUD vẫn được phép ghi đè logic đó.
type Salary struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	LabourerID primitive.ObjectID `json:"labourerId" bson:"labourerId" index:"single"`

	// StartPeriod, EndPeriod là mốc kỳ công (UnixMilli, chuẩn hóa 00:00:00 UTC).
	StartPeriod int64 `json:"startPeriod" bson:"startPeriod" index:"single"`
	EndPeriod   int64 `json:"endPeriod" bson:"endPeriod"`

	TotalDaysPresent int64   `json:"totalDaysPresent" bson:"totalDaysPresent"`
	DailyWage        float64 `json:"dailyWage" bson:"dailyWage"`
	TotalSalary      float64 `json:"totalSalary" bson:"totalSalary"`

	Status string `json:"status" bson:"status" index:"single"`

	// PaymentDate chỉ có khi status = paid (UnixMilli).
	PaymentDate int64  `json:"paymentDate,omitempty" bson:"paymentDate,omitempty"`
	PayslipURL  string `json:"payslipUrl,omitempty" bson:"payslipUrl,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
