package laboursvc

import (
	"context"
	"fmt"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	basesvc "labour_ledger/internal/api/base/service"
	"labour_ledger/internal/common"
	"labour_ledger/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaveService quản lý đơn xin nghỉ của lao động
type LeaveService struct {
	*basesvc.BaseServiceMongoImpl[models.Leave]

	labourerService *LabourerService
}

// NewLeaveService tạo mới LeaveService
func NewLeaveService() (*LeaveService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Leaves)
	if !exist {
		return nil, fmt.Errorf("failed to get leaves collection: %v", common.ErrNotFound)
	}

	labourerService, err := NewLabourerService()
	if err != nil {
		return nil, err
	}

	return &LeaveService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Leave](col),
		labourerService:      labourerService,
	}, nil
}

// Create tạo đơn xin nghỉ mới ở trạng thái pending.
func (s *LeaveService) Create(ctx context.Context, input *labourdto.LeaveCreateInput) (models.Leave, error) {
	var zero models.Leave

	labourerID, err := primitive.ObjectIDFromHex(input.LabourerID)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, "labourerId không hợp lệ", common.StatusBadRequest, nil)
	}
	if exists, err := s.labourerService.DocumentExists(ctx, bson.M{"_id": labourerID}); err != nil {
		return zero, err
	} else if !exists {
		return zero, common.NewError(common.ErrCodeBusiness, "Không tìm thấy lao động", common.StatusNotFound, nil)
	}

	startDate, err := parsePeriodDate(input.StartDate, "startDate")
	if err != nil {
		return zero, err
	}
	endDate, err := parsePeriodDate(input.EndDate, "endDate")
	if err != nil {
		return zero, err
	}
	if startDate > endDate {
		return zero, common.NewError(common.ErrCodeValidationInput, "startDate phải không muộn hơn endDate", common.StatusBadRequest, nil)
	}

	return s.InsertOne(ctx, models.Leave{
		LabourerID: labourerID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     input.Reason,
		Status:     models.LeavePending,
	})
}

// Review duyệt hoặc từ chối một đơn xin nghỉ đang chờ.
// Đơn đã được xử lý rồi thì trả về lỗi 409, không cho đổi quyết định qua endpoint này.
func (s *LeaveService) Review(ctx context.Context, id primitive.ObjectID, approve bool, reviewedBy primitive.ObjectID) (models.Leave, error) {
	var zero models.Leave

	leave, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if leave.Status != models.LeavePending {
		return zero, common.NewError(
			common.ErrCodeBusiness,
			fmt.Sprintf("Đơn xin nghỉ đã được xử lý với trạng thái '%s'", leave.Status),
			common.StatusConflict,
			nil,
		)
	}

	status := models.LeaveRejected
	if approve {
		status = models.LeaveApproved
	}

	set := map[string]interface{}{"status": status}
	if !reviewedBy.IsZero() {
		set["reviewedBy"] = reviewedBy
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// OverlappingApproved tìm các đơn nghỉ đã duyệt giao với khoảng [from, to] của một lao động.
// Dùng để đối chiếu khi chấm công present rơi vào ngày đã duyệt nghỉ.
func (s *LeaveService) OverlappingApproved(ctx context.Context, labourerID primitive.ObjectID, from, to int64) ([]models.Leave, error) {
	return s.Find(ctx, bson.M{
		"labourerId": labourerID,
		"status":     models.LeaveApproved,
		"startDate":  bson.M{"$lte": to},
		"endDate":    bson.M{"$gte": from},
	}, nil)
}
