package main

import (
	"context"
	"time"

	authdto "labour_ledger/internal/api/auth/dto"
	authsvc "labour_ledger/internal/api/auth/service"
	"labour_ledger/internal/global"
	"labour_ledger/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData tạo tài khoản quản trị đầu tiên khi hệ thống chưa có người dùng.
// Không cấu hình ADMIN_EMAIL/ADMIN_PASSWORD thì bỏ qua, người dùng đầu tiên tự đăng ký.
func InitDefaultData() {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	if cfg.Admin_Email == "" || cfg.Admin_Password == "" {
		log.Info("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping default admin account")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := userService.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	if count > 0 {
		log.Info("Users already exist, skipping default admin account")
		return
	}

	admin, err := userService.Register(ctx, &authdto.UserRegisterInput{
		Name:     "Administrator",
		Email:    cfg.Admin_Email,
		Password: cfg.Admin_Password,
	})
	if err != nil {
		log.Fatalf("Failed to create default admin account: %v", err)
	}

	log.Infof("Default admin account created: %s (ID: %s)", admin.Email, admin.ID.Hex())
}
