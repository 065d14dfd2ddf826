package labourhdl

import (
	"fmt"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	laboursvc "labour_ledger/internal/api/labour/service"
	basehdl "labour_ledger/internal/api/base/handler"
)

// ProjectHandler xử lý các request quản lý dự án, CRUD đi hết qua base handler.
type ProjectHandler struct {
	*basehdl.BaseHandler[models.Project, labourdto.ProjectCreateInput, labourdto.ProjectUpdateInput]
}

// NewProjectHandler tạo instance mới của ProjectHandler
func NewProjectHandler() (*ProjectHandler, error) {
	projectService, err := laboursvc.NewProjectService()
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %v", err)
	}
	return &ProjectHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Project, labourdto.ProjectCreateInput, labourdto.ProjectUpdateInput](projectService),
	}, nil
}
