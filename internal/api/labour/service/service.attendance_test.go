// Package laboursvc - Test chuẩn hóa ngày, filter khóa và kiểm tra batch chấm công.
package laboursvc

import (
	"context"
	"errors"
	"testing"
	"time"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	"labour_ledger/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeDate(t *testing.T) {
	// Giữa ngày theo UTC phải về 00:00:00 cùng ngày
	noon := time.Date(2024, 5, 20, 13, 45, 30, 0, time.UTC).UnixMilli()
	want := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC).UnixMilli()
	if got := NormalizeDate(noon); got != want {
		t.Errorf("NormalizeDate giữa ngày = %d, muốn %d", got, want)
	}

	// Đã là đầu ngày thì giữ nguyên
	if got := NormalizeDate(want); got != want {
		t.Errorf("NormalizeDate đầu ngày = %d, muốn giữ nguyên %d", got, want)
	}
}

func TestKeyFilter(t *testing.T) {
	labourerID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC).UnixMilli()

	filter := keyFilter(labourerID, projectID, date, "morning")
	if len(filter) != 4 {
		t.Fatalf("keyFilter phải có đúng 4 key, nhận %d", len(filter))
	}
	if filter["labourerId"] != labourerID || filter["projectId"] != projectID {
		t.Error("keyFilter sai tham chiếu lao động hoặc dự án")
	}
	if filter["date"] != date || filter["shift"] != "morning" {
		t.Error("keyFilter sai ngày hoặc ca")
	}
}

func TestBulkAdd_AllInvalidRecords(t *testing.T) {
	// Batch toàn bản ghi hỏng không chạm vào database, trả lỗi kèm lý do từng bản ghi
	service := &AttendanceService{}
	validID := primitive.NewObjectID().Hex()

	input := &labourdto.AttendanceBulkInput{Records: []labourdto.AttendanceCreateInput{
		{LabourerID: "sai-định-dạng", ProjectID: validID, Date: "2024-05-20", Shift: "morning", Status: "present"},
		{LabourerID: validID, ProjectID: validID, Date: "20/05/2024", Shift: "morning", Status: "present"},
		{LabourerID: validID, ProjectID: validID, Date: "2024-05-20", Shift: "ca-ba", Status: "present"},
		{LabourerID: validID, ProjectID: validID, Date: "2024-05-20", Shift: "night", Status: "nghỉ"},
	}}

	_, err := service.BulkAdd(context.Background(), input, primitive.NilObjectID)
	if err == nil {
		t.Fatal("Batch toàn bản ghi hỏng phải trả về lỗi")
	}

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Lỗi không thuộc taxonomy của hệ thống: %v", err)
	}
	if appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusBadRequest)
	}

	failed, ok := appErr.Details.([]BulkFailedRecord)
	if !ok {
		t.Fatalf("Details không phải danh sách bản ghi hỏng: %T", appErr.Details)
	}
	if len(failed) != 4 {
		t.Fatalf("Phải có 4 bản ghi hỏng, nhận %d", len(failed))
	}
	for i, f := range failed {
		if f.Index != i {
			t.Errorf("Bản ghi hỏng thứ %d có Index = %d", i, f.Index)
		}
		if f.Reason == "" {
			t.Errorf("Bản ghi hỏng thứ %d thiếu lý do", i)
		}
	}
	if failed[0].Reason != "labourerId không hợp lệ" {
		t.Errorf("Lý do bản ghi 0 = %q", failed[0].Reason)
	}
	if failed[1].Reason != "date phải có định dạng YYYY-MM-DD" {
		t.Errorf("Lý do bản ghi 1 = %q", failed[1].Reason)
	}
}

func TestBuildAttendanceUpdate_MarkedBy(t *testing.T) {
	// Đổi người chấm phải vào $set nhưng không được coi là đổi khóa
	existing := models.Attendance{
		LabourerID: primitive.NewObjectID(),
		ProjectID:  primitive.NewObjectID(),
		Date:       time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC).UnixMilli(),
		Shift:      "morning",
		Status:     "present",
		MarkedBy:   primitive.NewObjectID(),
	}
	newMarker := primitive.NewObjectID()

	upd, err := buildAttendanceUpdate(existing, &labourdto.AttendanceUpdateInput{MarkedBy: newMarker.Hex()})
	if err != nil {
		t.Fatalf("Đổi markedBy hợp lệ trả về lỗi: %v", err)
	}
	if upd.set["markedBy"] != newMarker {
		t.Errorf("set[markedBy] = %v, muốn %v", upd.set["markedBy"], newMarker)
	}
	if upd.keyChanged {
		t.Error("markedBy không thuộc bộ khóa, không được bật keyChanged")
	}

	// Gửi lại đúng người chấm hiện tại thì không có gì để ghi
	upd, err = buildAttendanceUpdate(existing, &labourdto.AttendanceUpdateInput{MarkedBy: existing.MarkedBy.Hex()})
	if err != nil {
		t.Fatalf("Giữ nguyên markedBy trả về lỗi: %v", err)
	}
	if len(upd.set) != 0 {
		t.Errorf("Giữ nguyên giá trị cũ không được vào $set, nhận %v", upd.set)
	}

	if _, err := buildAttendanceUpdate(existing, &labourdto.AttendanceUpdateInput{MarkedBy: "xyz"}); err == nil {
		t.Error("markedBy sai định dạng phải trả về lỗi")
	}
}

func TestBuildAttendanceUpdate_KeyChanged(t *testing.T) {
	existing := models.Attendance{
		LabourerID: primitive.NewObjectID(),
		ProjectID:  primitive.NewObjectID(),
		Date:       time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC).UnixMilli(),
		Shift:      "morning",
		Status:     "present",
	}

	// Đổi ca là đổi khóa, phải bật keyChanged và giữ ba khóa còn lại
	upd, err := buildAttendanceUpdate(existing, &labourdto.AttendanceUpdateInput{Shift: "night"})
	if err != nil {
		t.Fatalf("Đổi ca hợp lệ trả về lỗi: %v", err)
	}
	if !upd.keyChanged {
		t.Error("Đổi ca phải bật keyChanged")
	}
	if upd.shift != "night" || upd.labourerID != existing.LabourerID || upd.date != existing.Date {
		t.Error("Bộ khóa sau thay đổi phải gồm ca mới và các khóa cũ còn lại")
	}

	// Đổi mỗi trạng thái thì không chạm vào bộ khóa
	upd, err = buildAttendanceUpdate(existing, &labourdto.AttendanceUpdateInput{Status: "absent"})
	if err != nil {
		t.Fatalf("Đổi trạng thái hợp lệ trả về lỗi: %v", err)
	}
	if upd.keyChanged {
		t.Error("Đổi trạng thái không được bật keyChanged")
	}
	if upd.set["status"] != "absent" {
		t.Errorf("set[status] = %v, muốn absent", upd.set["status"])
	}
}

func TestParsePeriodDate(t *testing.T) {
	got, err := parsePeriodDate("2024-02-29", "startPeriod")
	if err != nil {
		t.Fatalf("Ngày nhuận hợp lệ trả về lỗi: %v", err)
	}
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC).UnixMilli()
	if got != want {
		t.Errorf("parsePeriodDate = %d, muốn %d", got, want)
	}

	if _, err := parsePeriodDate("2024-13-01", "endPeriod"); err == nil {
		t.Error("Tháng 13 phải trả về lỗi")
	}
}

func TestPeriodOverlapFilter(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC).UnixMilli()

	filter := PeriodOverlapFilter(from, to)
	if len(filter) != 2 {
		t.Fatalf("Filter giao kỳ phải có 2 điều kiện, nhận %d", len(filter))
	}

	startCond, ok := filter["startPeriod"].(bson.M)
	if !ok || startCond["$lte"] != to {
		t.Errorf("startPeriod phải có điều kiện $lte = to, nhận %v", filter["startPeriod"])
	}
	endCond, ok := filter["endPeriod"].(bson.M)
	if !ok || endCond["$gte"] != from {
		t.Errorf("endPeriod phải có điều kiện $gte = from, nhận %v", filter["endPeriod"])
	}
}
