package basehdl

import (
	"testing"
	"time"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
)

func TestTransformInputToModel_SalaryUpdate(t *testing.T) {
	// paymentDate dạng "YYYY-MM-DD" phải về UnixMilli đầu ngày UTC trên model
	input := labourdto.SalaryUpdateInput{
		PaymentDate: "2024-06-01",
		Status:      "paid",
	}
	var salary models.Salary
	if err := transformInputToModel(&input, &salary); err != nil {
		t.Fatalf("Transform input hợp lệ trả về lỗi: %v", err)
	}

	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if salary.PaymentDate != want {
		t.Errorf("PaymentDate = %d, muốn %d", salary.PaymentDate, want)
	}
	if salary.Status != "paid" {
		t.Errorf("Status = %q, muốn paid", salary.Status)
	}

	// paymentDate bỏ trống là optional, không được đụng vào model
	var empty models.Salary
	if err := transformInputToModel(&labourdto.SalaryUpdateInput{}, &empty); err != nil {
		t.Fatalf("Transform input rỗng trả về lỗi: %v", err)
	}
	if empty.PaymentDate != 0 {
		t.Errorf("PaymentDate khi không gửi = %d, muốn 0", empty.PaymentDate)
	}
}
