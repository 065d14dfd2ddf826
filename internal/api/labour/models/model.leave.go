package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đơn xin nghỉ
const (
	LeavePending  = "pending"  // Chờ duyệt
	LeaveApproved = "approved" // Đã duyệt
	LeaveRejected = "rejected" // Từ chối
)

// Leave là đơn xin nghỉ của lao động trong một khoảng ngày.
type Leave struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	LabourerID primitive.ObjectID `json:"labourerId" bson:"labourerId" index:"single"`

	// StartDate, EndDate là khoảng nghỉ (UnixMilli, chuẩn hóa 00:00:00 UTC).
	StartDate int64 `json:"startDate" bson:"startDate" index:"single"`
	EndDate   int64 `json:"endDate" bson:"endDate"`

	Reason string `json:"reason,omitempty" bson:"reason,omitempty"`
	Status string `json:"status" bson:"status" index:"single"`

	// ReviewedBy là người duyệt hoặc từ chối đơn.
	ReviewedBy primitive.ObjectID `json:"reviewedBy,omitempty" bson:"reviewedBy,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
