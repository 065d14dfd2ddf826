package labourhdl

import (
	"errors"
	"testing"
	"time"

	"labour_ledger/internal/common"
)

func TestCheckSalaryPeriod(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC).UnixMilli()

	if err := checkSalaryPeriod(start, end); err != nil {
		t.Errorf("Kỳ công xuôi phải hợp lệ, nhận lỗi: %v", err)
	}
	// Kỳ một ngày (start = end) vẫn hợp lệ
	if err := checkSalaryPeriod(start, start); err != nil {
		t.Errorf("Kỳ công một ngày phải hợp lệ, nhận lỗi: %v", err)
	}

	err := checkSalaryPeriod(end, start)
	if err == nil {
		t.Fatal("Kỳ công ngược phải bị từ chối")
	}
	if !errors.Is(err, common.ErrSalaryPeriodInvalid) {
		t.Errorf("Lỗi kỳ công ngược = %v, muốn ErrSalaryPeriodInvalid", err)
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusBadRequest {
		t.Error("Kỳ công ngược phải trả về status 400")
	}
}
