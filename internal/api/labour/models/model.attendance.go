package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ca làm việc
const (
	ShiftMorning = "morning" // Ca sáng
	ShiftEvening = "evening" // Ca chiều
	ShiftNight   = "night"   // Ca đêm
)

// Trạng thái chấm công
const (
	AttendancePresent = "present"  // Có mặt
	AttendanceAbsent  = "absent"   // Vắng mặt
	AttendanceHalfDay = "half-day" // Nửa ngày
)

// ValidShifts và ValidAttendanceStatuses dùng cho kiểm tra đầu vào hàng loạt,
// nơi validator struct tag không chạy qua được từng phần tử.
var (
	ValidShifts             = []string{ShiftMorning, ShiftEvening, ShiftNight}
	ValidAttendanceStatuses = []string{AttendancePresent, AttendanceAbsent, AttendanceHalfDay}
)

// Attendance là một lượt chấm công: một lao động, tại một dự án, trong một ngày, một ca.
// Bộ bốn (labourerId, projectId, date, shift) là duy nhất; compound unique index
// bên dưới là chốt chặn cuối cùng chống ghi trùng khi nhiều request chạy song song.
type Attendance struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	LabourerID primitive.ObjectID `json:"labourerId" bson:"labourerId" index:"single;compound:attendance_key_unique"`
	ProjectID  primitive.ObjectID `json:"projectId" bson:"projectId" index:"single;compound:attendance_key_unique"`

	// Date là ngày chấm công, chuẩn hóa về 00:00:00 UTC (UnixMilli).
	Date int64 `json:"date" bson:"date" index:"single;compound:attendance_key_unique"`

	Shift  string `json:"shift" bson:"shift" index:"compound:attendance_key_unique"`
	Status string `json:"status" bson:"status" index:"single"`

	// MarkedBy là người dùng thực hiện chấm công, có thể rỗng với dữ liệu nhập hàng loạt.
	MarkedBy primitive.ObjectID `json:"markedBy,omitempty" bson:"markedBy,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// IsValidShift kiểm tra giá trị ca làm việc.
func IsValidShift(s string) bool {
	for _, v := range ValidShifts {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidAttendanceStatus kiểm tra giá trị trạng thái chấm công.
func IsValidAttendanceStatus(s string) bool {
	for _, v := range ValidAttendanceStatuses {
		if v == s {
			return true
		}
	}
	return false
}
