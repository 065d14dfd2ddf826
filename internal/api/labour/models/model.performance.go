package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerformanceScoreMax là điểm đánh giá cao nhất trên thang 0..100.
const PerformanceScoreMax = 100

// Performance là một lượt đánh giá hiệu suất: một lao động, tại một dự án,
// trong một ngày. Bộ ba (labourerId, projectId, date) là duy nhất, compound
// unique index bên dưới chặn đánh giá trùng ngày.
type Performance struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	LabourerID primitive.ObjectID `json:"labourerId" bson:"labourerId" index:"single;compound:performance_key_unique"`
	ProjectID  primitive.ObjectID `json:"projectId" bson:"projectId" index:"single;compound:performance_key_unique"`

	// Date là ngày đánh giá, chuẩn hóa về 00:00:00 UTC (UnixMilli).
	Date int64 `json:"date" bson:"date" index:"single;compound:performance_key_unique"`

	// PerformanceScore là điểm trên thang 0..100.
	PerformanceScore float64 `json:"performanceScore" bson:"performanceScore"`
	Remarks          string  `json:"remarks" bson:"remarks"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
