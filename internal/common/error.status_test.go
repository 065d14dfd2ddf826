// Package common - Test phân loại lỗi xung đột và errors.Is trên Error.
package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsConflict(t *testing.T) {
	if !IsConflict(ErrAttendanceDuplicate) {
		t.Error("ErrAttendanceDuplicate phải là lỗi xung đột")
	}
	if !IsConflict(ErrMongoDuplicate) {
		t.Error("ErrMongoDuplicate phải là lỗi xung đột")
	}
	if IsConflict(ErrNotFound) {
		t.Error("ErrNotFound không phải lỗi xung đột")
	}
	if IsConflict(errors.New("lỗi thường")) {
		t.Error("Lỗi ngoài taxonomy không phải lỗi xung đột")
	}

	// Lỗi bị wrap vẫn nhận diện được
	wrapped := fmt.Errorf("khi ghi chấm công: %w", ErrAttendanceDuplicate)
	if !IsConflict(wrapped) {
		t.Error("Lỗi xung đột bị wrap vẫn phải nhận diện được")
	}
}

func TestErrorIs(t *testing.T) {
	if !errors.Is(ErrAttendanceDuplicate, ErrAttendanceDuplicate) {
		t.Error("errors.Is phải khớp chính nó")
	}
	if errors.Is(ErrAttendanceDuplicate, ErrMongoDuplicate) {
		t.Error("Hai lỗi khác mã và message không được khớp nhau")
	}
}
