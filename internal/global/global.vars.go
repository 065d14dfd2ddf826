package global

import (
	"labour_ledger/config"
	"labour_ledger/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users        string // Tên collection cho người dùng hệ thống
	Labourers    string // Tên collection cho lao động
	Projects     string // Tên collection cho dự án
	Attendances  string // Tên collection cho sổ chấm công
	Salaries     string // Tên collection cho bản ghi lương
	Leaves       string // Tên collection cho đơn xin nghỉ
	Performances string // Tên collection cho bản ghi đánh giá hiệu suất
}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                             // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
