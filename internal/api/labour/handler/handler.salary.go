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

// SalaryHandler xử lý các request quản lý lương.
type SalaryHandler struct {
	*basehdl.BaseHandler[models.Salary, labourdto.SalaryCreateInput, labourdto.SalaryUpdateInput]
	salaryService *laboursvc.SalaryService
}

// NewSalaryHandler tạo instance mới của SalaryHandler
func NewSalaryHandler() (*SalaryHandler, error) {
	salaryService, err := laboursvc.NewSalaryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create salary service: %v", err)
	}
	h := &SalaryHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Salary, labourdto.SalaryCreateInput, labourdto.SalaryUpdateInput](salaryService),
		salaryService: salaryService,
	}
	// Danh sách lương mặc định xếp kỳ công mới nhất trước
	h.SetDefaultSort(bson.D{{Key: "startPeriod", Value: -1}, {Key: "endPeriod", Value: -1}})
	return h, nil
}

// HandleCreate tạo tay một bản ghi lương. Kỳ công ngược (start sau end) bị từ chối.
func (h *SalaryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input labourdto.SalaryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		salary, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
			return nil
		}
		if err := checkSalaryPeriod(salary.StartPeriod, salary.EndPeriod); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.salaryService.InsertOne(c.Context(), *salary)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleGenerate sinh bản ghi lương cho mọi lao động có ngày công trong kỳ.
// Gọi lại cho cùng kỳ không nhân đôi dữ liệu, chỉ sinh cho lao động còn thiếu.
func (h *SalaryHandler) HandleGenerate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input labourdto.SalaryGenerateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.salaryService.GenerateForPeriod(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleMarkPaid đánh dấu bản ghi lương đã thanh toán, gửi email thông báo cho lao động
func (h *SalaryHandler) HandleMarkPaid(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		// Body rỗng vẫn hợp lệ: ngày thanh toán mặc định là hôm nay
		input := labourdto.SalaryMarkPaidInput{}
		if len(c.Body()) > 0 {
			if err := h.ParseRequestBody(c, &input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			if err := h.ValidateInput(&input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		updated, err := h.salaryService.MarkPaid(c.Context(), id, &input)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleSummary tổng hợp lương đã trả và còn chờ trong phạm vi lọc từ query
// (labourerId, status, from, to theo kỳ công)
func (h *SalaryHandler) HandleSummary(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		match, err := salaryScopeFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		summary, err := h.salaryService.Summary(c.Context(), match)
		h.HandleResponse(c, summary, err)
		return nil
	})
}

// checkSalaryPeriod từ chối kỳ công ngược (startPeriod sau endPeriod).
func checkSalaryPeriod(startPeriod, endPeriod int64) error {
	if startPeriod > endPeriod {
		return common.ErrSalaryPeriodInvalid
	}
	return nil
}

// salaryScopeFilter dựng filter lương từ query params.
// from/to lọc theo giao của kỳ công với khoảng ngày truyền vào.
func salaryScopeFilter(c fiber.Ctx) (bson.M, error) {
	match := bson.M{}

	if v := c.Query("labourerId"); v != "" {
		oid, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "labourerId không hợp lệ", common.StatusBadRequest, nil)
		}
		match["labourerId"] = oid
	}
	if v := c.Query("status"); v != "" {
		if v != models.SalaryPending && v != models.SalaryPaid {
			return nil, common.NewError(common.ErrCodeValidationInput, "status phải là pending hoặc paid", common.StatusBadRequest, nil)
		}
		match["status"] = v
	}

	if v := c.Query("paymentDate"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "paymentDate phải có định dạng YYYY-MM-DD", common.StatusBadRequest, nil)
		}
		// Lọc trong trọn một ngày vì paymentDate lưu cả giờ thanh toán
		dayStart := parsed.UnixMilli()
		match["paymentDate"] = bson.M{
			"$gte": dayStart,
			"$lt":  parsed.AddDate(0, 0, 1).UnixMilli(),
		}
	}

	var from, to int64
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "from phải có định dạng YYYY-MM-DD", common.StatusBadRequest, nil)
		}
		from = laboursvc.NormalizeDate(parsed.UnixMilli())
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "to phải có định dạng YYYY-MM-DD", common.StatusBadRequest, nil)
		}
		to = laboursvc.NormalizeDate(parsed.UnixMilli())
	}
	if from > 0 || to > 0 {
		if to == 0 {
			to = laboursvc.NormalizeDate(time.Now().UnixMilli())
		}
		overlap := laboursvc.PeriodOverlapFilter(from, to)
		for k, v := range overlap {
			match[k] = v
		}
	}

	return match, nil
}
