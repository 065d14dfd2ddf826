package labourhdl

import (
	"fmt"
	"time"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	laboursvc "labour_ledger/internal/api/labour/service"
	basehdl "labour_ledger/internal/api/base/handler"
	"labour_ledger/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceHandler xử lý các request của sổ chấm công.
// Mọi thao tác ghi đi qua endpoint nghiệp vụ riêng để giữ kiểm tra trùng
// bộ bốn khóa; phần đọc dùng lại base handler.
type AttendanceHandler struct {
	*basehdl.BaseHandler[models.Attendance, labourdto.AttendanceCreateInput, labourdto.AttendanceUpdateInput]
	attendanceService *laboursvc.AttendanceService
}

// NewAttendanceHandler tạo instance mới của AttendanceHandler
func NewAttendanceHandler() (*AttendanceHandler, error) {
	attendanceService, err := laboursvc.NewAttendanceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance service: %v", err)
	}
	h := &AttendanceHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.Attendance, labourdto.AttendanceCreateInput, labourdto.AttendanceUpdateInput](attendanceService),
		attendanceService: attendanceService,
	}
	// Danh sách chấm công mặc định xếp ngày mới nhất trước
	h.SetDefaultSort(bson.D{{Key: "date", Value: -1}, {Key: "shift", Value: 1}})
	return h, nil
}

// HandleMark ghi một lượt chấm công.
// Người chấm là user đang đăng nhập trừ khi body chỉ định markedBy khác.
func (h *AttendanceHandler) HandleMark(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input labourdto.AttendanceCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
			return nil
		}
		if model.MarkedBy.IsZero() {
			model.MarkedBy = currentUserObjectID(c)
		}

		created, err := h.attendanceService.Mark(c.Context(), *model)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleBulkAdd ghi nhiều lượt chấm công một lần, thành bại độc lập từng bản ghi
func (h *AttendanceHandler) HandleBulkAdd(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input labourdto.AttendanceBulkInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.attendanceService.BulkAdd(c.Context(), &input, currentUserObjectID(c))
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdateById sửa một lượt chấm công theo danh sách trường cho phép,
// kiểm tra lại tính duy nhất khi thay đổi chạm vào bộ bốn khóa
func (h *AttendanceHandler) HandleUpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		var input labourdto.AttendanceUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.attendanceService.Update(c.Context(), id, &input)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleGetDetail đọc một lượt chấm công kèm tóm tắt lao động, dự án, người chấm
func (h *AttendanceHandler) HandleGetDetail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		detail, err := h.attendanceService.GetDetail(c.Context(), id)
		h.HandleResponse(c, detail, err)
		return nil
	})
}

// HandleStatusSummary đếm số lượt theo trạng thái trong phạm vi lọc từ query
// (labourerId, projectId, from, to, shift)
func (h *AttendanceHandler) HandleStatusSummary(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		match, err := attendanceScopeFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		summary, err := h.attendanceService.StatusSummary(c.Context(), match)
		h.HandleResponse(c, summary, err)
		return nil
	})
}

// HandleDashboard trả về ảnh chụp tình hình chấm công hôm nay và chuỗi 7 ngày
func (h *AttendanceHandler) HandleDashboard(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		dashboard, err := h.attendanceService.Dashboard(c.Context())
		h.HandleResponse(c, dashboard, err)
		return nil
	})
}

// attendanceScopeFilter dựng filter chấm công từ query params.
// from/to nhận "YYYY-MM-DD" và lọc theo khoảng ngày đã chuẩn hóa.
func attendanceScopeFilter(c fiber.Ctx) (bson.M, error) {
	match := bson.M{}

	if v := c.Query("labourerId"); v != "" {
		oid, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "labourerId không hợp lệ", common.StatusBadRequest, nil)
		}
		match["labourerId"] = oid
	}
	if v := c.Query("projectId"); v != "" {
		oid, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "projectId không hợp lệ", common.StatusBadRequest, nil)
		}
		match["projectId"] = oid
	}
	if v := c.Query("shift"); v != "" {
		if !models.IsValidShift(v) {
			return nil, common.NewError(common.ErrCodeValidationInput, "shift phải là morning, evening hoặc night", common.StatusBadRequest, nil)
		}
		match["shift"] = v
	}
	if v := c.Query("status"); v != "" {
		if !models.IsValidAttendanceStatus(v) {
			return nil, common.NewError(common.ErrCodeValidationInput, "status phải là present, absent hoặc half-day", common.StatusBadRequest, nil)
		}
		match["status"] = v
	}

	dateRange := bson.M{}
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "from phải có định dạng YYYY-MM-DD", common.StatusBadRequest, nil)
		}
		dateRange["$gte"] = laboursvc.NormalizeDate(parsed.UnixMilli())
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "to phải có định dạng YYYY-MM-DD", common.StatusBadRequest, nil)
		}
		dateRange["$lte"] = laboursvc.NormalizeDate(parsed.UnixMilli())
	}
	if len(dateRange) > 0 {
		match["date"] = dateRange
	}

	return match, nil
}

// currentUserObjectID lấy ObjectID của user đang đăng nhập từ context,
// trả về zero value khi request không qua middleware xác thực.
func currentUserObjectID(c fiber.Ctx) primitive.ObjectID {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}
