package laboursvc

import (
	"context"
	"time"

	models "labour_ledger/internal/api/labour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExportRowLimit chặn số dòng tối đa của một lần tải CSV.
// Dữ liệu lớn hơn phải tải theo từng lát lọc (dự án, khoảng ngày).
const ExportRowLimit = 10000

// ExportHeader là dòng tiêu đề của file CSV chấm công.
var ExportHeader = []string{
	"Date", "Shift", "Status",
	"LabourerName", "LabourerContact",
	"ProjectName", "ProjectLocation",
	"MarkedBy", "MarkedByEmail",
	"RecordId",
}

// ExportRows đọc các lượt chấm công theo filter và trải phẳng thành dòng CSV,
// đã gồm dòng tiêu đề. Tên lao động, dự án và người chấm được resolve theo lô.
// Tham chiếu đã bị xóa để trống cột tương ứng.
func (s *AttendanceService) ExportRows(ctx context.Context, filter bson.M) ([][]string, error) {
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "shift", Value: 1}}).
		SetLimit(ExportRowLimit)

	records, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	labourerNames := map[primitive.ObjectID][2]string{}
	projectNames := map[primitive.ObjectID][2]string{}
	markerNames := map[primitive.ObjectID][2]string{}

	labourerIDs := uniqueIDs(records, func(a models.Attendance) primitive.ObjectID { return a.LabourerID })
	projectIDs := uniqueIDs(records, func(a models.Attendance) primitive.ObjectID { return a.ProjectID })
	markerIDs := uniqueIDs(records, func(a models.Attendance) primitive.ObjectID { return a.MarkedBy })

	if labourers, err := s.labourerService.FindManyByIds(ctx, labourerIDs); err == nil {
		for _, l := range labourers {
			labourerNames[l.ID] = [2]string{l.Name, l.ContactNumber}
		}
	}
	if projects, err := s.projectService.FindManyByIds(ctx, projectIDs); err == nil {
		for _, p := range projects {
			projectNames[p.ID] = [2]string{p.Name, p.Location}
		}
	}
	if users, err := s.userService.FindManyByIds(ctx, markerIDs); err == nil {
		for _, u := range users {
			markerNames[u.ID] = [2]string{u.Name, u.Email}
		}
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, ExportHeader)
	for _, rec := range records {
		labourer := labourerNames[rec.LabourerID]
		project := projectNames[rec.ProjectID]
		marker := markerNames[rec.MarkedBy]

		rows = append(rows, []string{
			time.UnixMilli(rec.Date).UTC().Format("2006-01-02"),
			rec.Shift,
			rec.Status,
			labourer[0], labourer[1],
			project[0], project[1],
			marker[0], marker[1],
			rec.ID.Hex(),
		})
	}

	return rows, nil
}

// uniqueIDs gom các ObjectID khác rỗng, khử trùng lặp, giữ thứ tự xuất hiện.
func uniqueIDs(records []models.Attendance, pick func(models.Attendance) primitive.ObjectID) []primitive.ObjectID {
	seen := map[primitive.ObjectID]bool{}
	var ids []primitive.ObjectID
	for _, rec := range records {
		id := pick(rec)
		if id.IsZero() || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
