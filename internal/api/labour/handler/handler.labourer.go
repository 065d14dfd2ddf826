// Package labourhdl - handler của domain labour.
package labourhdl

import (
	"fmt"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	laboursvc "labour_ledger/internal/api/labour/service"
	basehdl "labour_ledger/internal/api/base/handler"
	basesvc "labour_ledger/internal/api/base/service"
	"labour_ledger/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LabourerHandler xử lý các request quản lý lao động.
// Ngoài tạo mới (cần default isActive), CRUD đi hết qua base handler.
type LabourerHandler struct {
	*basehdl.BaseHandler[models.Labourer, labourdto.LabourerCreateInput, labourdto.LabourerUpdateInput]
	labourerService *laboursvc.LabourerService
}

// NewLabourerHandler tạo instance mới của LabourerHandler
func NewLabourerHandler() (*LabourerHandler, error) {
	labourerService, err := laboursvc.NewLabourerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create labourer service: %v", err)
	}
	return &LabourerHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Labourer, labourdto.LabourerCreateInput, labourdto.LabourerUpdateInput](labourerService),
		labourerService: labourerService,
	}, nil
}

// HandleCreate tạo mới lao động. Không truyền isActive thì mặc định đang làm việc.
func (h *LabourerHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input labourdto.LabourerCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		created, err := h.labourerService.InsertOne(c.Context(), models.Labourer{
			Name:          input.Name,
			ContactNumber: input.ContactNumber,
			Email:         input.Email,
			IsActive:      isActive,
		})
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleActivate mở lại trạng thái đang làm việc cho lao động
func (h *LabourerHandler) HandleActivate(c fiber.Ctx) error {
	return h.setActive(c, true)
}

// HandleDeactivate đánh dấu lao động nghỉ hẳn.
// Update thường bỏ qua giá trị zero nên tắt cờ isActive phải đi qua endpoint riêng.
func (h *LabourerHandler) HandleDeactivate(c fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *LabourerHandler) setActive(c fiber.Ctx, active bool) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		updated, err := h.labourerService.UpdateById(c.Context(), id, &basesvc.UpdateData{
			Set: map[string]interface{}{"isActive": active},
		})
		h.HandleResponse(c, updated, err)
		return nil
	})
}
