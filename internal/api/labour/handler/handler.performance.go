package labourhdl

import (
	"fmt"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	laboursvc "labour_ledger/internal/api/labour/service"
	basehdl "labour_ledger/internal/api/base/handler"
	"labour_ledger/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerformanceHandler xử lý các request đánh giá hiệu suất lao động.
// Ghi và sửa đi qua endpoint riêng để giữ kiểm tra trùng bộ ba khóa;
// phần đọc dùng lại base handler.
type PerformanceHandler struct {
	*basehdl.BaseHandler[models.Performance, labourdto.PerformanceCreateInput, labourdto.PerformanceUpdateInput]
	performanceService *laboursvc.PerformanceService
}

// NewPerformanceHandler tạo instance mới của PerformanceHandler
func NewPerformanceHandler() (*PerformanceHandler, error) {
	performanceService, err := laboursvc.NewPerformanceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create performance service: %v", err)
	}
	h := &PerformanceHandler{
		BaseHandler:        basehdl.NewBaseHandler[models.Performance, labourdto.PerformanceCreateInput, labourdto.PerformanceUpdateInput](performanceService),
		performanceService: performanceService,
	}
	// Danh sách đánh giá mặc định xếp ngày mới nhất trước
	h.SetDefaultSort(bson.D{{Key: "date", Value: -1}})
	return h, nil
}

// HandleCreate ghi một lượt đánh giá hiệu suất
func (h *PerformanceHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input labourdto.PerformanceCreateInput
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

		created, err := h.performanceService.Create(c.Context(), *model)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleUpdateById sửa một lượt đánh giá theo danh sách trường cho phép,
// kiểm tra lại tính duy nhất khi thay đổi chạm vào bộ ba khóa
func (h *PerformanceHandler) HandleUpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		var input labourdto.PerformanceUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.performanceService.Update(c.Context(), id, &input)
		h.HandleResponse(c, updated, err)
		return nil
	})
}
