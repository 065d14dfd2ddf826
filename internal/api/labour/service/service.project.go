package laboursvc

import (
	"fmt"

	models "labour_ledger/internal/api/labour/models"
	basesvc "labour_ledger/internal/api/base/service"
	"labour_ledger/internal/common"
	"labour_ledger/internal/global"
)

// ProjectService quản lý danh sách dự án
type ProjectService struct {
	*basesvc.BaseServiceMongoImpl[models.Project]
}

// NewProjectService tạo mới ProjectService
func NewProjectService() (*ProjectService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Projects)
	if !exist {
		return nil, fmt.Errorf("failed to get projects collection: %v", common.ErrNotFound)
	}

	return &ProjectService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Project](col),
	}, nil
}
