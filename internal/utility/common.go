package utility

import (
	"time"
)

// CurrentTimeInMilli dùng để lấy thời gian hiện tại tính bằng mili giây.
// Mọi timestamp createdAt/updatedAt trong hệ thống đều dùng đơn vị này.
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}

// StartOfDay trả về mốc 00:00:00 của ngày chứa t (theo location của t).
// Dùng để chuẩn hóa trường date của bản ghi chấm công về độ chính xác ngày.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
