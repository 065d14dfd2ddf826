package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labour_ledger/internal/global"
	"labour_ledger/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server, chặn cho đến khi server dừng
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()

	// Bắt tín hiệu dừng để shutdown có trật tự, request đang chạy được phép hoàn tất
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		log.Infof("Received signal %v, shutting down server...", sig)
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("Error during server shutdown: %v", err)
		}
	}()

	log.WithFields(map[string]interface{}{
		"address": address,
	}).Info("Starting Fiber server")

	if err := app.Listen(address); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}

	log.Info("Server stopped")
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	// Chạy Fiber server trên main thread
	main_thread()
}
