package laboursvc

import (
	"context"
	"fmt"
	"time"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	basesvc "labour_ledger/internal/api/base/service"
	"labour_ledger/internal/common"
	"labour_ledger/internal/delivery/channels"
	"labour_ledger/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SalaryService quản lý bản ghi lương và bộ sinh lương theo kỳ công.
type SalaryService struct {
	*basesvc.BaseServiceMongoImpl[models.Salary]

	labourerService      *LabourerService
	attendanceCollection *mongo.Collection
}

// NewSalaryService tạo mới SalaryService
func NewSalaryService() (*SalaryService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Salaries)
	if !exist {
		return nil, fmt.Errorf("failed to get salaries collection: %v", common.ErrNotFound)
	}
	attendanceCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Attendances)
	if !exist {
		return nil, fmt.Errorf("failed to get attendances collection: %v", common.ErrNotFound)
	}

	labourerService, err := NewLabourerService()
	if err != nil {
		return nil, err
	}

	return &SalaryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Salary](col),
		labourerService:      labourerService,
		attendanceCollection: attendanceCol,
	}, nil
}

// MarkPaid chuyển bản ghi lương sang trạng thái đã thanh toán.
// Ngày thanh toán mặc định là hôm nay. Sau khi cập nhật, gửi email thông báo
// lương cho lao động nếu có địa chỉ email; gửi hỏng chỉ ghi log, không làm
// hỏng giao dịch đã hoàn tất.
func (s *SalaryService) MarkPaid(ctx context.Context, id primitive.ObjectID, input *labourdto.SalaryMarkPaidInput) (models.Salary, error) {
	var zero models.Salary

	salary, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if salary.Status == models.SalaryPaid {
		return zero, common.NewError(common.ErrCodeBusinessPayroll, "Bản ghi lương đã được thanh toán", common.StatusConflict, nil)
	}

	paymentDate := time.Now().UnixMilli()
	if input.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", input.PaymentDate)
		if err != nil {
			return zero, common.NewError(common.ErrCodeValidationFormat, "paymentDate phải có định dạng YYYY-MM-DD", common.StatusBadRequest, nil)
		}
		paymentDate = parsed.UnixMilli()
	}

	set := map[string]interface{}{
		"status":      models.SalaryPaid,
		"paymentDate": paymentDate,
	}
	switch {
	case input.PayslipURL != "":
		set["payslipUrl"] = input.PayslipURL
	case salary.PayslipURL == "":
		// Chưa có phiếu lương thì dựng link xem phiếu trên frontend
		set["payslipUrl"] = fmt.Sprintf("%s/payslips/%s", global.MongoDB_ServerConfig.FrontendURL, id.Hex())
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return zero, err
	}

	go s.sendPayslipNotice(updated)

	return updated, nil
}

// sendPayslipNotice gửi email thông báo lương, chạy nền sau khi MarkPaid thành công.
func (s *SalaryService) sendPayslipNotice(salary models.Salary) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	labourer, err := s.labourerService.FindOneById(ctx, salary.LabourerID)
	if err != nil || labourer.Email == "" {
		return
	}

	notice := &channels.PayslipNotice{
		LabourerName:     labourer.Name,
		StartPeriod:      time.UnixMilli(salary.StartPeriod).UTC(),
		EndPeriod:        time.UnixMilli(salary.EndPeriod).UTC(),
		TotalDaysPresent: salary.TotalDaysPresent,
		DailyWage:        salary.DailyWage,
		TotalSalary:      salary.TotalSalary,
		PaymentDate:      time.UnixMilli(salary.PaymentDate).UTC(),
		PayslipURL:       salary.PayslipURL,
	}
	if err := channels.SendPayslipEmail(global.MongoDB_ServerConfig, labourer.Email, notice); err != nil {
		logrus.WithFields(logrus.Fields{
			"salaryId": salary.ID.Hex(),
			"email":    labourer.Email,
			"error":    err.Error(),
		}).Warn("Gửi email thông báo lương thất bại")
	}
}

// SalarySummary tổng hợp lương trong một phạm vi lọc.
// Không có bản ghi nào khớp thì mọi giá trị là 0, không phải lỗi.
type SalarySummary struct {
	TotalPaid        float64 `json:"totalPaid" bson:"totalPaid"`
	TotalPending     float64 `json:"totalPending" bson:"totalPending"`
	TotalDaysPresent int64   `json:"totalDaysPresent" bson:"totalDaysPresent"`
	RecordsCount     int64   `json:"recordsCount" bson:"recordsCount"`
}

// Summary tổng hợp lương đã trả và còn chờ trong phạm vi match, bằng một lần $group.
func (s *SalaryService) Summary(ctx context.Context, match bson.M) (*SalarySummary, error) {
	if match == nil {
		match = bson.M{}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": nil,
			"totalPaid": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.SalaryPaid}},
				"$totalSalary",
				0,
			}}},
			"totalPending": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.SalaryPending}},
				"$totalSalary",
				0,
			}}},
			"totalDaysPresent": bson.M{"$sum": "$totalDaysPresent"},
			"recordsCount":     bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	summary := &SalarySummary{}
	if cursor.Next(ctx) {
		if err := cursor.Decode(summary); err != nil {
			return nil, common.ConvertMongoError(err)
		}
	}
	return summary, nil
}

// PeriodOverlapFilter dựng filter các bản ghi lương có kỳ công giao với [from, to].
func PeriodOverlapFilter(from, to int64) bson.M {
	return bson.M{
		"startPeriod": bson.M{"$lte": to},
		"endPeriod":   bson.M{"$gte": from},
	}
}
