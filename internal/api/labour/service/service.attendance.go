package laboursvc

import (
	"context"
	"fmt"
	"time"

	authmodels "labour_ledger/internal/api/auth/models"
	authsvc "labour_ledger/internal/api/auth/service"
	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	basesvc "labour_ledger/internal/api/base/service"
	"labour_ledger/internal/common"
	"labour_ledger/internal/global"
	"labour_ledger/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceService quản lý sổ chấm công.
// Giữ tham chiếu tới service lao động, dự án và người dùng để kiểm tra
// tồn tại khi ghi và bổ sung thông tin tóm tắt khi đọc chi tiết.
type AttendanceService struct {
	*basesvc.BaseServiceMongoImpl[models.Attendance]

	labourerService *LabourerService
	projectService  *ProjectService
	userService     *authsvc.UserService
}

// NewAttendanceService tạo mới AttendanceService
func NewAttendanceService() (*AttendanceService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Attendances)
	if !exist {
		return nil, fmt.Errorf("failed to get attendances collection: %v", common.ErrNotFound)
	}

	labourerService, err := NewLabourerService()
	if err != nil {
		return nil, err
	}
	projectService, err := NewProjectService()
	if err != nil {
		return nil, err
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &AttendanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Attendance](col),
		labourerService:      labourerService,
		projectService:       projectService,
		userService:          userService,
	}, nil
}

// NormalizeDate chuẩn hóa timestamp về 00:00:00 UTC của ngày đó.
// Mọi đường ghi chấm công đều đi qua đây để bộ bốn khóa so sánh được chính xác.
func NormalizeDate(ms int64) int64 {
	return utility.StartOfDay(time.UnixMilli(ms).UTC()).UnixMilli()
}

// keyFilter dựng filter theo bộ bốn khóa duy nhất của một lượt chấm công.
func keyFilter(labourerID, projectID primitive.ObjectID, date int64, shift string) bson.M {
	return bson.M{
		"labourerId": labourerID,
		"projectId":  projectID,
		"date":       date,
		"shift":      shift,
	}
}

// Mark ghi một lượt chấm công.
// Trùng bộ bốn (lao động, dự án, ngày, ca) trả về lỗi 409; unique index trong
// MongoDB là chốt chặn cuối cùng nên hai request song song không thể cùng ghi.
func (s *AttendanceService) Mark(ctx context.Context, att models.Attendance) (models.Attendance, error) {
	var zero models.Attendance

	att.Date = NormalizeDate(att.Date)

	// Kiểm tra tham chiếu trước khi ghi
	if exists, err := s.labourerService.DocumentExists(ctx, bson.M{"_id": att.LabourerID}); err != nil {
		return zero, err
	} else if !exists {
		return zero, common.NewError(common.ErrCodeBusinessAttendance, "Không tìm thấy lao động", common.StatusNotFound, nil)
	}
	if exists, err := s.projectService.DocumentExists(ctx, bson.M{"_id": att.ProjectID}); err != nil {
		return zero, err
	} else if !exists {
		return zero, common.NewError(common.ErrCodeBusinessAttendance, "Không tìm thấy dự án", common.StatusNotFound, nil)
	}

	created, err := s.InsertOne(ctx, att)
	if err != nil {
		if common.IsConflict(err) {
			return zero, common.ErrAttendanceDuplicate
		}
		return zero, err
	}
	return created, nil
}

// attendanceUpdate là kết quả so khớp input với bản ghi hiện có:
// map $set cần ghi, bộ bốn khóa sau thay đổi và cờ keyChanged.
type attendanceUpdate struct {
	set        map[string]interface{}
	labourerID primitive.ObjectID
	projectID  primitive.ObjectID
	date       int64
	shift      string
	keyChanged bool
}

// buildAttendanceUpdate dựng phần thay đổi từ danh sách trường cho phép sửa
// (labourerId, projectId, date, shift, status, markedBy). Trường giữ nguyên
// giá trị cũ không vào $set; chỉ bốn trường khóa mới bật cờ keyChanged.
func buildAttendanceUpdate(existing models.Attendance, input *labourdto.AttendanceUpdateInput) (*attendanceUpdate, error) {
	upd := &attendanceUpdate{
		set:        map[string]interface{}{},
		labourerID: existing.LabourerID,
		projectID:  existing.ProjectID,
		date:       existing.Date,
		shift:      existing.Shift,
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
	if input.Shift != "" && input.Shift != existing.Shift {
		upd.shift, upd.keyChanged = input.Shift, true
		upd.set["shift"] = input.Shift
	}
	if input.Status != "" && input.Status != existing.Status {
		upd.set["status"] = input.Status
	}
	if input.MarkedBy != "" {
		oid, err := primitive.ObjectIDFromHex(input.MarkedBy)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "markedBy không hợp lệ", common.StatusBadRequest, nil)
		}
		if oid != existing.MarkedBy {
			upd.set["markedBy"] = oid
		}
	}

	return upd, nil
}

// Update sửa một lượt chấm công theo danh sách trường cho phép.
// Nếu thay đổi chạm vào bộ bốn khóa thì kiểm tra lại tính duy nhất, loại trừ chính bản ghi.
func (s *AttendanceService) Update(ctx context.Context, id primitive.ObjectID, input *labourdto.AttendanceUpdateInput) (models.Attendance, error) {
	var zero models.Attendance

	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	upd, err := buildAttendanceUpdate(existing, input)
	if err != nil {
		return zero, err
	}
	if len(upd.set) == 0 {
		return existing, nil
	}

	if upd.keyChanged {
		filter := keyFilter(upd.labourerID, upd.projectID, upd.date, upd.shift)
		filter["_id"] = bson.M{"$ne": id}
		if count, err := s.CountDocuments(ctx, filter); err != nil {
			return zero, err
		} else if count > 0 {
			return zero, common.ErrAttendanceDuplicate
		}
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: upd.set})
	if err != nil {
		if common.IsConflict(err) {
			return zero, common.ErrAttendanceDuplicate
		}
		return zero, err
	}
	return updated, nil
}

// AttendanceDetail là một lượt chấm công kèm thông tin tóm tắt của các bên liên quan.
type AttendanceDetail struct {
	models.Attendance

	Labourer *LabourerSummary `json:"labourer,omitempty"`
	Project  *ProjectSummary  `json:"project,omitempty"`
	Marker   *MarkerSummary   `json:"marker,omitempty"`
}

// LabourerSummary thông tin rút gọn của lao động
type LabourerSummary struct {
	ID            primitive.ObjectID `json:"id"`
	Name          string             `json:"name"`
	ContactNumber string             `json:"contactNumber,omitempty"`
}

// ProjectSummary thông tin rút gọn của dự án
type ProjectSummary struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Location string             `json:"location,omitempty"`
}

// MarkerSummary thông tin rút gọn của người chấm công
type MarkerSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email,omitempty"`
}

// GetDetail đọc một lượt chấm công và bổ sung tóm tắt lao động, dự án, người chấm.
// Tham chiếu đã bị xóa chỉ làm trống phần tóm tắt tương ứng, không làm hỏng request.
func (s *AttendanceService) GetDetail(ctx context.Context, id primitive.ObjectID) (*AttendanceDetail, error) {
	att, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &AttendanceDetail{Attendance: att}

	if labourer, err := s.labourerService.FindOneById(ctx, att.LabourerID); err == nil {
		detail.Labourer = &LabourerSummary{ID: labourer.ID, Name: labourer.Name, ContactNumber: labourer.ContactNumber}
	}
	if project, err := s.projectService.FindOneById(ctx, att.ProjectID); err == nil {
		detail.Project = &ProjectSummary{ID: project.ID, Name: project.Name, Location: project.Location}
	}
	if !att.MarkedBy.IsZero() {
		if user, err := s.userService.FindOneById(ctx, att.MarkedBy); err == nil {
			detail.Marker = markerSummary(user)
		}
	}

	return detail, nil
}

func markerSummary(user authmodels.User) *MarkerSummary {
	return &MarkerSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}
