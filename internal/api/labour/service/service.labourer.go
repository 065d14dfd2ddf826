// Package laboursvc - service nghiệp vụ của domain labour.
package laboursvc

import (
	"context"
	"fmt"

	models "labour_ledger/internal/api/labour/models"
	basesvc "labour_ledger/internal/api/base/service"
	"labour_ledger/internal/common"
	"labour_ledger/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// LabourerService quản lý danh sách lao động
type LabourerService struct {
	*basesvc.BaseServiceMongoImpl[models.Labourer]
}

// NewLabourerService tạo mới LabourerService
func NewLabourerService() (*LabourerService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Labourers)
	if !exist {
		return nil, fmt.Errorf("failed to get labourers collection: %v", common.ErrNotFound)
	}

	return &LabourerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Labourer](col),
	}, nil
}

// CountActive đếm số lao động đang làm việc, dùng cho dashboard chấm công.
func (s *LabourerService) CountActive(ctx context.Context) (int64, error) {
	return s.CountDocuments(ctx, bson.M{"isActive": true})
}
