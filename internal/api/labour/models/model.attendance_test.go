package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidShift(t *testing.T) {
	for _, s := range ValidShifts {
		assert.True(t, IsValidShift(s), "ca %q phải hợp lệ", s)
	}
	assert.False(t, IsValidShift("afternoon"), "ca ngoài danh sách phải bị loại")
	assert.False(t, IsValidShift(""), "ca rỗng phải bị loại")
	assert.False(t, IsValidShift("Morning"), "giá trị ca phân biệt hoa thường")
}

func TestIsValidAttendanceStatus(t *testing.T) {
	for _, s := range ValidAttendanceStatuses {
		assert.True(t, IsValidAttendanceStatus(s), "trạng thái %q phải hợp lệ", s)
	}
	assert.False(t, IsValidAttendanceStatus("late"), "trạng thái ngoài danh sách phải bị loại")
	assert.False(t, IsValidAttendanceStatus("halfday"), "trạng thái nửa ngày phải viết là half-day")
}
