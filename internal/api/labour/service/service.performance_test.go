package laboursvc

import (
	"testing"
	"time"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPerformanceKeyFilter(t *testing.T) {
	labourerID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC).UnixMilli()

	filter := performanceKeyFilter(labourerID, projectID, date)
	if len(filter) != 3 {
		t.Fatalf("performanceKeyFilter phải có đúng 3 key, nhận %d", len(filter))
	}
	if filter["labourerId"] != labourerID || filter["projectId"] != projectID || filter["date"] != date {
		t.Error("performanceKeyFilter sai tham chiếu hoặc ngày")
	}
}

func TestBuildPerformanceUpdate(t *testing.T) {
	existing := models.Performance{
		LabourerID:       primitive.NewObjectID(),
		ProjectID:        primitive.NewObjectID(),
		Date:             time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC).UnixMilli(),
		PerformanceScore: 72,
		Remarks:          "Làm việc ổn định",
	}

	// Đổi điểm và nhận xét không chạm vào bộ khóa
	score := 85.0
	upd, err := buildPerformanceUpdate(existing, &labourdto.PerformanceUpdateInput{
		PerformanceScore: &score,
		Remarks:          "Tiến bộ rõ rệt",
	})
	if err != nil {
		t.Fatalf("Đổi điểm và nhận xét hợp lệ trả về lỗi: %v", err)
	}
	if upd.keyChanged {
		t.Error("Điểm và nhận xét không thuộc bộ khóa, không được bật keyChanged")
	}
	if upd.set["performanceScore"] != 85.0 || upd.set["remarks"] != "Tiến bộ rõ rệt" {
		t.Errorf("$set thiếu hoặc sai giá trị: %v", upd.set)
	}

	// Đổi ngày là đổi khóa
	upd, err = buildPerformanceUpdate(existing, &labourdto.PerformanceUpdateInput{Date: "2024-05-21"})
	if err != nil {
		t.Fatalf("Đổi ngày hợp lệ trả về lỗi: %v", err)
	}
	if !upd.keyChanged {
		t.Error("Đổi ngày phải bật keyChanged")
	}
	want := time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC).UnixMilli()
	if upd.date != want || upd.set["date"] != want {
		t.Errorf("Ngày sau thay đổi = %d, muốn %d", upd.date, want)
	}

	// Gửi lại đúng giá trị hiện tại thì không có gì để ghi
	sameScore := existing.PerformanceScore
	upd, err = buildPerformanceUpdate(existing, &labourdto.PerformanceUpdateInput{
		Date:             "2024-05-20",
		PerformanceScore: &sameScore,
		Remarks:          existing.Remarks,
	})
	if err != nil {
		t.Fatalf("Giữ nguyên giá trị cũ trả về lỗi: %v", err)
	}
	if len(upd.set) != 0 || upd.keyChanged {
		t.Errorf("Giữ nguyên giá trị cũ không được vào $set, nhận %v", upd.set)
	}
}

func TestBuildPerformanceUpdate_ScoreOutOfRange(t *testing.T) {
	existing := models.Performance{PerformanceScore: 50}

	tooHigh := 101.0
	if _, err := buildPerformanceUpdate(existing, &labourdto.PerformanceUpdateInput{PerformanceScore: &tooHigh}); err == nil {
		t.Error("Điểm trên 100 phải trả về lỗi")
	}
	negative := -1.0
	if _, err := buildPerformanceUpdate(existing, &labourdto.PerformanceUpdateInput{PerformanceScore: &negative}); err == nil {
		t.Error("Điểm âm phải trả về lỗi")
	}
}
