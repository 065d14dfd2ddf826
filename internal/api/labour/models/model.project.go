package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái dự án
const (
	ProjectStatusActive    = "active"    // Đang thi công
	ProjectStatusOnHold    = "on-hold"   // Tạm dừng
	ProjectStatusCompleted = "completed" // Đã hoàn thành
)

// Project là dự án / công trường nơi lao động được chấm công.
type Project struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name     string `json:"name" bson:"name" index:"single"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Status   string `json:"status" bson:"status" index:"single"`

	// StartDate, EndDate là mốc thời gian dự án (UnixMilli). EndDate = 0 nghĩa là chưa xác định.
	StartDate int64 `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate   int64 `json:"endDate,omitempty" bson:"endDate,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
