// Package authhdl - handler xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"

	authdto "labour_ledger/internal/api/auth/dto"
	models "labour_ledger/internal/api/auth/models"
	authsvc "labour_ledger/internal/api/auth/service"
	basehdl "labour_ledger/internal/api/base/handler"
	"labour_ledger/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleRegister xử lý đăng ký tài khoản mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Register(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogin xử lý đăng nhập, trả về user kèm JWT token
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, token, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"user": user, "token": token}, nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất (thu hồi token hiện tại)
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.userService.Logout(c.Context(), objID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetProfile lấy thông tin profile của người dùng đang đăng nhập
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.FindOneById(c.Context(), objID)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateProfile cập nhật thông tin profile (name, phone)
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UserChangeInfoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updateData := map[string]interface{}{}
		if input.Name != "" {
			updateData["name"] = input.Name
		}
		if input.Phone != "" {
			updateData["phone"] = input.Phone
		}
		if len(updateData) == 0 {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có trường nào để cập nhật", common.StatusBadRequest, nil))
			return nil
		}

		user, err := h.userService.UpdateById(c.Context(), objID, updateData)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu (yêu cầu mật khẩu cũ, thu hồi token)
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UserChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.ChangePassword(c.Context(), objID, &input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// currentUserID lấy ObjectID của user đang đăng nhập từ context (do AuthMiddleware set).
func (h *UserHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "Chưa đăng nhập", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "User ID không hợp lệ", common.StatusBadRequest, err)
	}
	return objID, nil
}
