// Package models - User thuộc domain auth (auth_users).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User người dùng hệ thống (quản lý công trường / kế toán), người thực hiện chấm công và duyệt lương.
type User struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email" index:"unique"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`

	// Password đã hash bằng bcrypt, không bao giờ trả về cho client.
	Password string `json:"-" bson:"password"`

	// Token JWT mới nhất, được cập nhật mỗi lần login, xóa khi logout.
	Token string `json:"-" bson:"token,omitempty" index:"single"`

	IsBlock   bool   `json:"isBlock" bson:"isBlock"`
	BlockNote string `json:"blockNote,omitempty" bson:"blockNote,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt" index:"single"`
}
