package laboursvc

import (
	"testing"

	models "labour_ledger/internal/api/labour/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExportHeader(t *testing.T) {
	want := []string{
		"Date", "Shift", "Status",
		"LabourerName", "LabourerContact",
		"ProjectName", "ProjectLocation",
		"MarkedBy", "MarkedByEmail",
		"RecordId",
	}
	if len(ExportHeader) != len(want) {
		t.Fatalf("Header CSV có %d cột, muốn %d", len(ExportHeader), len(want))
	}
	for i, col := range want {
		if ExportHeader[i] != col {
			t.Errorf("Cột %d = %q, muốn %q", i, ExportHeader[i], col)
		}
	}
}

func TestUniqueIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	records := []models.Attendance{
		{LabourerID: a},
		{LabourerID: b},
		{LabourerID: a},                   // Trùng, phải bị khử
		{LabourerID: primitive.NilObjectID}, // Rỗng, phải bị bỏ qua
	}

	ids := uniqueIDs(records, func(r models.Attendance) primitive.ObjectID { return r.LabourerID })
	if len(ids) != 2 {
		t.Fatalf("uniqueIDs trả về %d phần tử, muốn 2", len(ids))
	}
	if ids[0] != a || ids[1] != b {
		t.Error("uniqueIDs phải giữ thứ tự xuất hiện")
	}
}
