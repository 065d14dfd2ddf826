package laboursvc

import (
	"context"
	"errors"
	"testing"
	"time"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	"labour_ledger/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSalaryRecords_SkipsCoveredLabourers(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC).UnixMilli()

	presences := []presenceRow{
		{LabourerID: a, TotalDaysPresent: 20},
		{LabourerID: b, TotalDaysPresent: 15},
		{LabourerID: c, TotalDaysPresent: 8},
	}
	// b đã có bản ghi lương đúng kỳ này, gọi lại không được sinh thêm cho b
	covered := map[primitive.ObjectID]bool{b: true}

	toInsert, skipped := buildSalaryRecords(presences, covered, start, end, 500)
	if skipped != 1 {
		t.Errorf("skipped = %d, muốn 1", skipped)
	}
	if len(toInsert) != 2 {
		t.Fatalf("Phải sinh 2 bản ghi, nhận %d", len(toInsert))
	}
	for _, sal := range toInsert {
		if sal.LabourerID == b {
			t.Error("Lao động đã có bản ghi lương đúng kỳ không được sinh lại")
		}
		if sal.StartPeriod != start || sal.EndPeriod != end {
			t.Error("Kỳ công của bản ghi sinh ra phải đúng kỳ yêu cầu")
		}
		if sal.Status != models.SalaryPending {
			t.Errorf("Bản ghi mới sinh phải ở trạng thái pending, nhận %q", sal.Status)
		}
	}

	// Gọi lần nữa với tất cả đã có bản ghi: không sinh gì, đếm đủ skipped
	covered = map[primitive.ObjectID]bool{a: true, b: true, c: true}
	toInsert, skipped = buildSalaryRecords(presences, covered, start, end, 500)
	if len(toInsert) != 0 || skipped != 3 {
		t.Errorf("Tất cả đã có bản ghi: sinh %d, skipped %d, muốn 0 và 3", len(toInsert), skipped)
	}
}

func TestGenerateForPeriod_InputValidation(t *testing.T) {
	// Input hỏng bị chặn trước khi chạm vào database
	service := &SalaryService{}
	ctx := context.Background()
	wage := 500.0
	negative := -1.0

	_, err := service.GenerateForPeriod(ctx, &labourdto.SalaryGenerateInput{
		StartPeriod: "2024-05-31", EndPeriod: "2024-05-01", DailyWage: &wage,
	})
	if !errors.Is(err, common.ErrSalaryPeriodInvalid) {
		t.Errorf("Kỳ công ngược = %v, muốn ErrSalaryPeriodInvalid", err)
	}

	_, err = service.GenerateForPeriod(ctx, &labourdto.SalaryGenerateInput{
		StartPeriod: "2024-05-01", EndPeriod: "2024-05-31",
	})
	var appErr *common.Error
	if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("Thiếu dailyWage phải trả về lỗi 400, nhận %v", err)
	}

	_, err = service.GenerateForPeriod(ctx, &labourdto.SalaryGenerateInput{
		StartPeriod: "2024-05-01", EndPeriod: "2024-05-31", DailyWage: &negative,
	})
	if !errors.Is(err, common.ErrNegativeWage) {
		t.Errorf("Mức lương âm = %v, muốn ErrNegativeWage", err)
	}
}

func TestBuildSalaryRecords_WageArithmetic(t *testing.T) {
	id := primitive.NewObjectID()
	presences := []presenceRow{{LabourerID: id, TotalDaysPresent: 22}}

	toInsert, _ := buildSalaryRecords(presences, nil, 0, 0, 350.5)
	if len(toInsert) != 1 {
		t.Fatalf("Phải sinh 1 bản ghi, nhận %d", len(toInsert))
	}
	sal := toInsert[0]
	if sal.TotalDaysPresent != 22 {
		t.Errorf("totalDaysPresent = %d, muốn 22", sal.TotalDaysPresent)
	}
	if sal.DailyWage != 350.5 {
		t.Errorf("dailyWage = %v, muốn 350.5", sal.DailyWage)
	}
	if sal.TotalSalary != 22*350.5 {
		t.Errorf("totalSalary = %v, muốn %v", sal.TotalSalary, 22*350.5)
	}

	// Mức lương 0 là hợp lệ, tổng lương phải bằng 0
	toInsert, _ = buildSalaryRecords(presences, nil, 0, 0, 0)
	if toInsert[0].TotalSalary != 0 {
		t.Errorf("totalSalary với mức lương 0 = %v, muốn 0", toInsert[0].TotalSalary)
	}
}
