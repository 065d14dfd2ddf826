// Package models - các model thuộc domain labour (sổ chấm công và lương).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Labourer là lao động trên công trường. Lương công nhật không lưu trên
// lao động: mỗi đợt sinh lương truyền mức lương của đợt đó.
type Labourer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name          string `json:"name" bson:"name" index:"single"`
	ContactNumber string `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`

	// IsActive đánh dấu lao động còn làm việc. Lao động nghỉ hẳn thì tắt cờ này
	// thay vì xóa, để dữ liệu chấm công và lương cũ vẫn tra cứu được.
	IsActive bool `json:"isActive" bson:"isActive" index:"single"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
