package laboursvc

import (
	"context"
	"math"
	"time"

	models "labour_ledger/internal/api/labour/models"
	"labour_ledger/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AttendanceStatusSummary đếm số lượt chấm công theo từng trạng thái.
// Trạng thái không xuất hiện trong phạm vi lọc vẫn trả về 0.
type AttendanceStatusSummary struct {
	Present      int64 `json:"present" bson:"present"`
	Absent       int64 `json:"absent" bson:"absent"`
	HalfDay      int64 `json:"halfDay" bson:"halfDay"`
	TotalRecords int64 `json:"totalRecords" bson:"totalRecords"`
}

// DailyPresence số lượt có mặt của một ngày, dùng cho chuỗi 7 ngày trên dashboard.
type DailyPresence struct {
	Date         string `json:"date"`
	PresentCount int64  `json:"presentCount"`
}

// AttendanceDashboard là ảnh chụp tình hình chấm công hôm nay.
type AttendanceDashboard struct {
	ActiveLabourers   int64           `json:"activeLabourers"`
	TodayPresent      int64           `json:"todayPresent"`
	TodayAbsent       int64           `json:"todayAbsent"`
	TodayHalfDay      int64           `json:"todayHalfDay"`
	AttendancePercent float64         `json:"attendancePercent"`
	Last7Days         []DailyPresence `json:"last7Days"`
}

// StatusSummary đếm số lượt theo trạng thái trong phạm vi match, bằng một lần $group.
func (s *AttendanceService) StatusSummary(ctx context.Context, match bson.M) (*AttendanceStatusSummary, error) {
	if match == nil {
		match = bson.M{}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"present":      sumIfStatus(models.AttendancePresent),
			"absent":       sumIfStatus(models.AttendanceAbsent),
			"halfDay":      sumIfStatus(models.AttendanceHalfDay),
			"totalRecords": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	summary := &AttendanceStatusSummary{}
	if cursor.Next(ctx) {
		if err := cursor.Decode(summary); err != nil {
			return nil, common.ConvertMongoError(err)
		}
	}
	return summary, nil
}

// sumIfStatus đếm có điều kiện theo status trong một stage $group.
func sumIfStatus(status string) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$status", status}},
		1,
		0,
	}}}
}

// Dashboard tổng hợp tình hình hôm nay và chuỗi có mặt 7 ngày gần nhất.
// Chuỗi trả về theo thứ tự cũ đến mới, ngày không có dữ liệu vẫn có mặt với count 0.
func (s *AttendanceService) Dashboard(ctx context.Context) (*AttendanceDashboard, error) {
	activeLabourers, err := s.labourerService.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	today := NormalizeDate(time.Now().UnixMilli())
	todaySummary, err := s.StatusSummary(ctx, bson.M{"date": today})
	if err != nil {
		return nil, err
	}

	dashboard := &AttendanceDashboard{
		ActiveLabourers: activeLabourers,
		TodayPresent:    todaySummary.Present,
		TodayAbsent:     todaySummary.Absent,
		TodayHalfDay:    todaySummary.HalfDay,
		Last7Days:       make([]DailyPresence, 0, 7),
	}

	// Không có lao động active thì percent là 0, không chia cho 0
	if activeLabourers > 0 {
		percent := float64(todaySummary.Present) / float64(activeLabourers) * 100
		dashboard.AttendancePercent = math.Round(percent*100) / 100
	}

	// Gom cả 7 ngày bằng một lần $group theo date rồi lấp ngày trống
	todayTime := time.UnixMilli(today).UTC()
	windowStart := todayTime.AddDate(0, 0, -6).UnixMilli()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status": models.AttendancePresent,
			"date":   bson.M{"$gte": windowStart, "$lte": today},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$date",
			"presentCount": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	countsByDate := map[int64]int64{}
	for cursor.Next(ctx) {
		var row struct {
			Date         int64 `bson:"_id"`
			PresentCount int64 `bson:"presentCount"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		countsByDate[row.Date] = row.PresentCount
	}

	for i := 6; i >= 0; i-- {
		day := todayTime.AddDate(0, 0, -i)
		dashboard.Last7Days = append(dashboard.Last7Days, DailyPresence{
			Date:         day.Format("2006-01-02"),
			PresentCount: countsByDate[day.UnixMilli()],
		})
	}

	return dashboard, nil
}
