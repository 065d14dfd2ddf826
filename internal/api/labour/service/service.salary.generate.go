package laboursvc

import (
	"context"
	"time"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	"labour_ledger/internal/common"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GenerateResult kết quả một lần sinh lương theo kỳ công.
type GenerateResult struct {
	GeneratedCount int             `json:"generatedCount"`
	SkippedCount   int             `json:"skippedCount"`
	Records        []models.Salary `json:"records"`
	Message        string          `json:"message"`
}

// presenceRow là một dòng kết quả $group: lao động và số ngày công present trong kỳ.
type presenceRow struct {
	LabourerID       primitive.ObjectID `bson:"_id"`
	TotalDaysPresent int64              `bson:"totalDaysPresent"`
}

// buildSalaryRecords dựng các bản ghi lương pending cho những lao động chưa có
// bản ghi đúng kỳ này. Lao động trong covered bị bỏ qua và đếm vào skipped.
// totalSalary luôn bằng totalDaysPresent nhân wage.
func buildSalaryRecords(presences []presenceRow, covered map[primitive.ObjectID]bool, start, end int64, wage float64) (toInsert []models.Salary, skipped int) {
	for _, p := range presences {
		if covered[p.LabourerID] {
			skipped++
			continue
		}
		toInsert = append(toInsert, models.Salary{
			LabourerID:       p.LabourerID,
			StartPeriod:      start,
			EndPeriod:        end,
			TotalDaysPresent: p.TotalDaysPresent,
			DailyWage:        wage,
			TotalSalary:      float64(p.TotalDaysPresent) * wage,
			Status:           models.SalaryPending,
		})
	}
	return toInsert, skipped
}

// GenerateForPeriod sinh bản ghi lương cho mọi lao động có ngày công trong kỳ,
// cùng một mức dailyWage cho cả đợt. Chỉ lượt chấm công present được tính ngày
// công; half-day không được tính (chính sách trả lương theo ngày tròn). Lao động
// đã có bản ghi lương đúng kỳ này bị bỏ qua nên gọi lại nhiều lần không nhân
// đôi dữ liệu.
//
// Lưu ý: bước lọc kỳ đã có và bước ghi không nằm trong một transaction. Hai
// lần gọi song song cho cùng kỳ có thể cùng vượt qua bước lọc và tạo bản ghi
// trùng; vận hành coi sinh lương là thao tác tuần tự của kế toán nên chưa
// siết bằng unique index, tạo tay qua CRUD cũng vì thế không bị chặn.
func (s *SalaryService) GenerateForPeriod(ctx context.Context, input *labourdto.SalaryGenerateInput) (*GenerateResult, error) {
	start, err := parsePeriodDate(input.StartPeriod, "startPeriod")
	if err != nil {
		return nil, err
	}
	end, err := parsePeriodDate(input.EndPeriod, "endPeriod")
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, common.ErrSalaryPeriodInvalid
	}
	if input.DailyWage == nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "dailyWage là bắt buộc", common.StatusBadRequest, nil)
	}
	if *input.DailyWage < 0 {
		return nil, common.ErrNegativeWage
	}

	// Đếm ngày công present của từng lao động trong kỳ bằng một lần $group
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status": models.AttendancePresent,
			"date":   bson.M{"$gte": start, "$lte": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":              "$labourerId",
			"totalDaysPresent": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var presences []presenceRow
	for cursor.Next(ctx) {
		var row presenceRow
		if err := cursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		presences = append(presences, row)
	}

	result := &GenerateResult{Records: []models.Salary{}}
	if len(presences) == 0 {
		result.Message = "Không có lượt chấm công present nào trong kỳ, không sinh bản ghi lương"
		return result, nil
	}

	labourerIDs := make([]primitive.ObjectID, 0, len(presences))
	for _, p := range presences {
		labourerIDs = append(labourerIDs, p.LabourerID)
	}

	// Lọc lao động đã có bản ghi lương đúng kỳ này
	existing, err := s.Find(ctx, bson.M{
		"labourerId":  bson.M{"$in": labourerIDs},
		"startPeriod": start,
		"endPeriod":   end,
	}, nil)
	if err != nil {
		return nil, err
	}
	covered := make(map[primitive.ObjectID]bool, len(existing))
	for _, sal := range existing {
		covered[sal.LabourerID] = true
	}

	toInsert, skipped := buildSalaryRecords(presences, covered, start, end, *input.DailyWage)
	result.SkippedCount = skipped

	if len(toInsert) == 0 {
		result.Message = "Tất cả lao động có ngày công trong kỳ đều đã có bản ghi lương, không sinh thêm"
		return result, nil
	}

	created, err := s.InsertMany(ctx, toInsert)
	if err != nil {
		return nil, err
	}

	result.GeneratedCount = len(created)
	result.Records = created
	result.Message = "Sinh lương theo kỳ hoàn tất"

	logrus.WithFields(logrus.Fields{
		"startPeriod": time.UnixMilli(start).UTC().Format("2006-01-02"),
		"endPeriod":   time.UnixMilli(end).UTC().Format("2006-01-02"),
		"generated":   result.GeneratedCount,
		"skipped":     result.SkippedCount,
	}).Info("Sinh lương theo kỳ hoàn tất")

	return result, nil
}

// parsePeriodDate parse mốc kỳ công "YYYY-MM-DD" về 00:00:00 UTC (UnixMilli).
func parsePeriodDate(value, fieldName string) (int64, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return 0, common.NewError(
			common.ErrCodeValidationFormat,
			fieldName+" phải có định dạng YYYY-MM-DD",
			common.StatusBadRequest,
			nil,
		)
	}
	return NormalizeDate(parsed.UnixMilli()), nil
}
