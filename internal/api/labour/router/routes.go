// Package router đăng ký các route thuộc domain labour:
// Labourer, Project, Attendance, Salary, Leave, Performance.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	labourhdl "labour_ledger/internal/api/labour/handler"
	"labour_ledger/internal/api/middleware"
	apirouter "labour_ledger/internal/api/router"
)

// Register đăng ký tất cả route của domain labour lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerLabourerRoutes(v1, r); err != nil {
		return err
	}
	if err := registerProjectRoutes(v1, r); err != nil {
		return err
	}
	if err := registerAttendanceRoutes(v1, r); err != nil {
		return err
	}
	if err := registerSalaryRoutes(v1, r); err != nil {
		return err
	}
	if err := registerLeaveRoutes(v1, r); err != nil {
		return err
	}
	if err := registerPerformanceRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerLabourerRoutes(router fiber.Router, r *apirouter.Router) error {
	labourerHandler, err := labourhdl.NewLabourerHandler()
	if err != nil {
		return fmt.Errorf("failed to create labourer handler: %w", err)
	}

	// Tạo mới đi qua handler riêng để mặc định isActive = true
	config := apirouter.ReadWriteConfig
	config.InsOne = false
	r.RegisterCRUDRoutes(router, "/labourer", labourerHandler, config)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(router, "/labourer", "POST", "/insert-one", auth, labourerHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(router, "/labourer", "POST", "/activate/:id", auth, labourerHandler.HandleActivate)
	apirouter.RegisterRouteWithMiddleware(router, "/labourer", "POST", "/deactivate/:id", auth, labourerHandler.HandleDeactivate)
	return nil
}

func registerProjectRoutes(router fiber.Router, r *apirouter.Router) error {
	projectHandler, err := labourhdl.NewProjectHandler()
	if err != nil {
		return fmt.Errorf("failed to create project handler: %w", err)
	}

	r.RegisterCRUDRoutes(router, "/project", projectHandler, apirouter.ReadWriteConfig)
	return nil
}

func registerAttendanceRoutes(router fiber.Router, r *apirouter.Router) error {
	attendanceHandler, err := labourhdl.NewAttendanceHandler()
	if err != nil {
		return fmt.Errorf("failed to create attendance handler: %w", err)
	}

	// Update đi qua handler riêng để giữ kiểm tra trùng bộ bốn khóa
	config := apirouter.RestrictedWriteConfig
	config.UpdById = false
	r.RegisterCRUDRoutes(router, "/attendance", attendanceHandler, config)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(router, "/attendance", "POST", "/mark", auth, attendanceHandler.HandleMark)
	apirouter.RegisterRouteWithMiddleware(router, "/attendance", "POST", "/bulk", auth, attendanceHandler.HandleBulkAdd)
	apirouter.RegisterRouteWithMiddleware(router, "/attendance", "PUT", "/update-by-id/:id", auth, attendanceHandler.HandleUpdateById)
	apirouter.RegisterRouteWithMiddleware(router, "/attendance", "GET", "/detail/:id", auth, attendanceHandler.HandleGetDetail)
	apirouter.RegisterRouteWithMiddleware(router, "/attendance", "GET", "/summary/status", auth, attendanceHandler.HandleStatusSummary)
	apirouter.RegisterRouteWithMiddleware(router, "/attendance", "GET", "/summary/dashboard", auth, attendanceHandler.HandleDashboard)
	apirouter.RegisterRouteWithMiddleware(router, "/attendance", "GET", "/download", auth, attendanceHandler.HandleDownload)
	return nil
}

func registerSalaryRoutes(router fiber.Router, r *apirouter.Router) error {
	salaryHandler, err := labourhdl.NewSalaryHandler()
	if err != nil {
		return fmt.Errorf("failed to create salary handler: %w", err)
	}

	// Tạo tay một bản ghi lương đi qua handler riêng để kiểm tra kỳ công hợp lệ
	r.RegisterCRUDRoutes(router, "/salary", salaryHandler, apirouter.RestrictedWriteConfig)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(router, "/salary", "POST", "/insert-one", auth, salaryHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(router, "/salary", "POST", "/generate", auth, salaryHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(router, "/salary", "POST", "/mark-paid/:id", auth, salaryHandler.HandleMarkPaid)
	apirouter.RegisterRouteWithMiddleware(router, "/salary", "GET", "/summary", auth, salaryHandler.HandleSummary)
	return nil
}

func registerPerformanceRoutes(router fiber.Router, r *apirouter.Router) error {
	performanceHandler, err := labourhdl.NewPerformanceHandler()
	if err != nil {
		return fmt.Errorf("failed to create performance handler: %w", err)
	}

	// Ghi và sửa đi qua handler riêng để giữ kiểm tra trùng bộ ba khóa
	config := apirouter.RestrictedWriteConfig
	config.UpdById = false
	r.RegisterCRUDRoutes(router, "/performance", performanceHandler, config)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(router, "/performance", "POST", "/insert-one", auth, performanceHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(router, "/performance", "PUT", "/update-by-id/:id", auth, performanceHandler.HandleUpdateById)
	return nil
}

func registerLeaveRoutes(router fiber.Router, r *apirouter.Router) error {
	leaveHandler, err := labourhdl.NewLeaveHandler()
	if err != nil {
		return fmt.Errorf("failed to create leave handler: %w", err)
	}

	// Tạo mới đi qua handler riêng để kiểm tra khoảng ngày và ép trạng thái pending
	r.RegisterCRUDRoutes(router, "/leave", leaveHandler, apirouter.RestrictedWriteConfig)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(router, "/leave", "POST", "/insert-one", auth, leaveHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(router, "/leave", "POST", "/approve/:id", auth, leaveHandler.HandleApprove)
	apirouter.RegisterRouteWithMiddleware(router, "/leave", "POST", "/reject/:id", auth, leaveHandler.HandleReject)
	return nil
}
