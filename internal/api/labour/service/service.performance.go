package laboursvc

import (
	"context"
	"fmt"
	"time"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	basesvc "labour_ledger/internal/api/base/service"
	"labour_ledger/internal/common"
	"labour_ledger/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerformanceService quản lý bản ghi đánh giá hiệu suất lao động.
type PerformanceService struct {
	*basesvc.BaseServiceMongoImpl[models.Performance]

	labourerService *LabourerService
	projectService  *ProjectService
}

// NewPerformanceService tạo mới PerformanceService
func NewPerformanceService() (*PerformanceService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Performances)
	if !exist {
		return nil, fmt.Errorf("failed to get performances collection: %v", common.ErrNotFound)
	}

	labourerService, err := NewLabourerService()
	if err != nil {
		return nil, err
	}
	projectService, err := NewProjectService()
	if err != nil {
		return nil, err
	}

	return &PerformanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Performance](col),
		labourerService:      labourerService,
		projectService:       projectService,
	}, nil
}

// performanceKeyFilter dựng filter theo bộ ba khóa duy nhất của một lượt đánh giá.
func performanceKeyFilter(labourerID, projectID primitive.ObjectID, date int64) bson.M {
	return bson.M{
		"labourerId": labourerID,
		"projectId":  projectID,
		"date":       date,
	}
}

// Create ghi một lượt đánh giá hiệu suất. Trùng bộ ba khóa trả về 409.
func (s *PerformanceService) Create(ctx context.Context, perf models.Performance) (models.Performance, error) {
	var zero models.Performance

	perf.Date = NormalizeDate(perf.Date)

	if exists, err := s.labourerService.DocumentExists(ctx, bson.M{"_id": perf.LabourerID}); err != nil {
		return zero, err
	} else if !exists {
		return zero, common.NewError(common.ErrCodeBusiness, "Không tìm thấy lao động", common.StatusNotFound, nil)
	}
	if exists, err := s.projectService.DocumentExists(ctx, bson.M{"_id": perf.ProjectID}); err != nil {
		return zero, err
	} else if !exists {
		return zero, common.NewError(common.ErrCodeBusiness, "Không tìm thấy dự án", common.StatusNotFound, nil)
	}

	created, err := s.InsertOne(ctx, perf)
	if err != nil {
		if common.IsConflict(err) {
			return zero, common.ErrPerformanceDuplicate
		}
		return zero, err
	}
	return created, nil
}

// performanceUpdate là kết quả so khớp input với bản ghi hiện có:
// map $set cần ghi, bộ ba khóa sau thay đổi và cờ keyChanged.
type performanceUpdate struct {
	set        map[string]interface{}
	labourerID primitive.ObjectID
	projectID  primitive.ObjectID
	date       int64
	keyChanged bool
}

// buildPerformanceUpdate dựng phần thay đổi từ danh sách trường cho phép sửa
// (labourerId, projectId, date, performanceScore, remarks). Trường giữ nguyên
// giá trị cũ không vào $set; chỉ ba trường khóa mới bật cờ keyChanged.
func buildPerformanceUpdate(existing models.Performance, input *labourdto.PerformanceUpdateInput) (*performanceUpdate, error) {
	upd := &performanceUpdate{
		set:        map[string]interface{}{},
		labourerID: existing.LabourerID,
		projectID:  existing.ProjectID,
		date:       existing.Date,
	}

	if input.LabourerID != "" {
		oid, err := primitive.ObjectIDFromHex(input.LabourerID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "labourerId không hợp lệ", common.StatusBadRequest, nil)
		}
		if oid != existing.LabourerID {
			upd.labourerID, upd.keyChanged = oid, true
			upd.set["labourerId"] = oid
		}
	}
	if input.ProjectID != "" {
		oid, err := primitive.ObjectIDFromHex(input.ProjectID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "projectId không hợp lệ", common.StatusBadRequest, nil)
		}
		if oid != existing.ProjectID {
			upd.projectID, upd.keyChanged = oid, true
			upd.set["projectId"] = oid
		}
	}
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "date phải có định dạng YYYY-MM-DD", common.StatusBadRequest, nil)
		}
		ms := NormalizeDate(parsed.UnixMilli())
		if ms != existing.Date {
			upd.date, upd.keyChanged = ms, true
			upd.set["date"] = ms
		}
	}
	if input.PerformanceScore != nil && *input.PerformanceScore != existing.PerformanceScore {
		if *input.PerformanceScore < 0 || *input.PerformanceScore > models.PerformanceScoreMax {
			return nil, common.NewError(common.ErrCodeValidationInput, "performanceScore phải trong khoảng 0 đến 100", common.StatusBadRequest, nil)
		}
		upd.set["performanceScore"] = *input.PerformanceScore
	}
	if input.Remarks != "" && input.Remarks != existing.Remarks {
		upd.set["remarks"] = input.Remarks
	}

	return upd, nil
}

// Update sửa một lượt đánh giá theo danh sách trường cho phép.
// Nếu thay đổi chạm vào bộ ba khóa thì kiểm tra lại tính duy nhất, loại trừ chính bản ghi.
func (s *PerformanceService) Update(ctx context.Context, id primitive.ObjectID, input *labourdto.PerformanceUpdateInput) (models.Performance, error) {
	var zero models.Performance

	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	upd, err := buildPerformanceUpdate(existing, input)
	if err != nil {
		return zero, err
	}
	if len(upd.set) == 0 {
		return existing, nil
	}

	if upd.keyChanged {
		filter := performanceKeyFilter(upd.labourerID, upd.projectID, upd.date)
		filter["_id"] = bson.M{"$ne": id}
		if count, err := s.CountDocuments(ctx, filter); err != nil {
			return zero, err
		} else if count > 0 {
			return zero, common.ErrPerformanceDuplicate
		}
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: upd.set})
	if err != nil {
		if common.IsConflict(err) {
			return zero, common.ErrPerformanceDuplicate
		}
		return zero, err
	}
	return updated, nil
}
