package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "labour_ledger/internal/api/auth/models"
	authsvc "labour_ledger/internal/api/auth/service"
	"labour_ledger/internal/common"
	"labour_ledger/internal/global"
	"labour_ledger/internal/logger"
	"labour_ledger/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			panic(err)
		}
		authManagerInstance = &AuthManager{
			UserCRUD: userService,
			// Cache user theo token với thời gian sống 5 phút, dọn dẹp mỗi 10 phút
			Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	return authManagerInstance
}

// AuthMiddleware middleware xác thực cho Fiber.
// Xác thực chữ ký + thời hạn JWT, sau đó đối chiếu token với user trong database
// (token bị thu hồi khi logout nên không thể chỉ tin chữ ký).
func AuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		token := parts[1]

		// Xác thực chữ ký và thời hạn token trước khi chạm vào database
		if _, err := utility.VerifyToken(global.MongoDB_ServerConfig.JwtSecret, token); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("JWT token không hợp lệ hoặc đã hết hạn")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Tìm user có token, ưu tiên cache để tối ưu hiệu suất
		var user models.User
		cacheKey := "auth_user:" + token
		if cached, found := authManager.Cache.Get(cacheKey); found {
			user = cached.(models.User)
		} else {
			var err error
			user, err = authManager.UserCRUD.FindOne(context.Background(), bson.M{"token": token}, nil)
			if err != nil {
				logger.GetAppLogger().WithFields(logrus.Fields{
					"path":  c.Path(),
					"error": err.Error(),
				}).Warn("Token không tồn tại trong database")
				HandleErrorResponse(c, common.ErrTokenInvalid)
				return nil
			}
			authManager.Cache.Set(cacheKey, user)
		}

		// Kiểm tra user có bị khóa không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context để handler sử dụng
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}
}
