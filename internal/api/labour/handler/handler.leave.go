package labourhdl

import (
	"fmt"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	laboursvc "labour_ledger/internal/api/labour/service"
	basehdl "labour_ledger/internal/api/base/handler"
	"labour_ledger/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaveHandler xử lý các request đơn xin nghỉ.
type LeaveHandler struct {
	*basehdl.BaseHandler[models.Leave, labourdto.LeaveCreateInput, labourdto.LeaveUpdateInput]
	leaveService *laboursvc.LeaveService
}

// NewLeaveHandler tạo instance mới của LeaveHandler
func NewLeaveHandler() (*LeaveHandler, error) {
	leaveService, err := laboursvc.NewLeaveService()
	if err != nil {
		return nil, fmt.Errorf("failed to create leave service: %v", err)
	}
	return &LeaveHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Leave, labourdto.LeaveCreateInput, labourdto.LeaveUpdateInput](leaveService),
		leaveService: leaveService,
	}, nil
}

// HandleCreate tạo đơn xin nghỉ mới ở trạng thái chờ duyệt
func (h *LeaveHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input labourdto.LeaveCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.leaveService.Create(c.Context(), &input)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleApprove duyệt đơn xin nghỉ đang chờ
func (h *LeaveHandler) HandleApprove(c fiber.Ctx) error {
	return h.review(c, true)
}

// HandleReject từ chối đơn xin nghỉ đang chờ
func (h *LeaveHandler) HandleReject(c fiber.Ctx) error {
	return h.review(c, false)
}

func (h *LeaveHandler) review(c fiber.Ctx, approve bool) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		updated, err := h.leaveService.Review(c.Context(), id, approve, currentUserObjectID(c))
		h.HandleResponse(c, updated, err)
		return nil
	})
}
