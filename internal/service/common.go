package service

import (
	"portfolio-dashboard/internal/repository"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

// requireProject 父项目不存在时返回专用错误码, 与普通未找到区分
func requireProject(projectRepo repository.ProjectRepository, projectID int64) error {
	_, err := projectRepo.FindByID(projectID)
	if err != nil {
		if pkgErrors.IsCode(err, pkgErrors.CodeNotFound) {
			return pkgErrors.ErrParentNotFound
		}
		return err
	}
	return nil
}
