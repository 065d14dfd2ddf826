package main

import (
	"context"

	"labour_ledger/config"
	authmodels "labour_ledger/internal/api/auth/models"
	labourmodels "labour_ledger/internal/api/labour/models"
	"labour_ledger/internal/database"
	"labour_ledger/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Labourers = "labour_labourers"
	global.MongoDB_ColNames.Projects = "labour_projects"
	global.MongoDB_ColNames.Attendances = "labour_attendances"
	global.MongoDB_ColNames.Salaries = "labour_salaries"
	global.MongoDB_ColNames.Leaves = "labour_leaves"
	global.MongoDB_ColNames.Performances = "labour_performances"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validators: no_xss, object_id, strong_password)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo struct tag `index` trên model.
	// Compound unique index trên attendances là chốt chặn chống ghi trùng lượt chấm công.
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Labourers), labourmodels.Labourer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Projects), labourmodels.Project{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Attendances), labourmodels.Attendance{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Salaries), labourmodels.Salary{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Leaves), labourmodels.Leave{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Performances), labourmodels.Performance{})
}
