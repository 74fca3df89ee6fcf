package service

import (
	"strings"

	"go.uber.org/zap"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/internal/pkg/logger"
	"portfolio-dashboard/internal/repository"
	"portfolio-dashboard/pkg/constants"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type NewsService interface {
	Add(projectID int64, req *dto.AddNewsRequest) (*model.NewsItem, error)
	List(projectID int64) ([]*model.NewsItem, error)
	Delete(id int64) error
}

type newsService struct {
	newsRepo    repository.NewsRepository
	projectRepo repository.ProjectRepository
}

func NewNewsService(newsRepo repository.NewsRepository, projectRepo repository.ProjectRepository) NewsService {
	return &newsService{newsRepo: newsRepo, projectRepo: projectRepo}
}

func (s *newsService) Add(projectID int64, req *dto.AddNewsRequest) (*model.NewsItem, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "动态日期不能为空")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "动态内容不能为空")
	}
	if req.Category != "" && !constants.ValidEnum("news_category", req.Category) {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "非法的动态分类: "+req.Category)
	}

	item := &model.NewsItem{
		ProjectID: projectID,
		Date:      req.Date,
		Content:   req.Content,
		Category:  req.Category,
		Author:    req.Author,
	}
	if item.Category == "" {
		item.Category = constants.NewsCategoryInfo
	}
	if err := s.newsRepo.Create(item); err != nil {
		return nil, err
	}

	logger.Info("添加项目动态成功", zap.Int64("project_id", projectID), zap.Int64("id", item.ID))
	return item, nil
}

func (s *newsService) List(projectID int64) ([]*model.NewsItem, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	return s.newsRepo.ListByProject(projectID)
}

func (s *newsService) Delete(id int64) error {
	return s.newsRepo.Delete(id)
}
