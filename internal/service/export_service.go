package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/internal/pkg/config"
	"portfolio-dashboard/internal/pkg/logger"
	"portfolio-dashboard/internal/repository"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

// 导出格式
const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

// PortfolioExport 导出文档根结构
type PortfolioExport struct {
	ExportedAt string           `json:"exported_at"`
	Projects   []*model.Project `json:"projects"`
}

type ExportService interface {
	Snapshot() (*PortfolioExport, error)
	ExportToFile(format string) (string, error)
	ExportProject(id int64, format string) ([]byte, string, error)
}

type exportService struct {
	exportRepo repository.ExportRepository
	cfg        *config.ExportConfig
}

func NewExportService(exportRepo repository.ExportRepository, cfg *config.ExportConfig) ExportService {
	return &exportService{exportRepo: exportRepo, cfg: cfg}
}

func (s *exportService) Snapshot() (*PortfolioExport, error) {
	projects, err := s.exportRepo.Snapshot()
	if err != nil {
		return nil, err
	}
	return &PortfolioExport{
		ExportedAt: time.Now().Format(time.RFC3339),
		Projects:   projects,
	}, nil
}

// ExportToFile 导出全量快照到文件, 返回文件路径
// format为空时使用配置默认格式
func (s *exportService) ExportToFile(format string) (string, error) {
	if format == "" {
		format = s.cfg.Format
	}
	if format != ExportFormatJSON && format != ExportFormatCSV {
		return "", pkgErrors.New(pkgErrors.CodeValidationError, "非法的导出格式: "+format)
	}

	snapshot, err := s.Snapshot()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.cfg.Dir, 0755); err != nil {
		return "", pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建导出目录失败", err)
	}

	name := fmt.Sprintf("portfolio_%s.%s", time.Now().Format("20060102_150405"), format)
	path := filepath.Join(s.cfg.Dir, name)

	switch format {
	case ExportFormatJSON:
		err = writeJSON(path, snapshot)
	case ExportFormatCSV:
		err = writeCSV(path, snapshot)
	}
	if err != nil {
		return "", pkgErrors.Wrap(pkgErrors.CodeInternalError, "写入导出文件失败", err)
	}

	logger.Info("导出完成", zap.String("path", path), zap.Int("projects", len(snapshot.Projects)))
	return path, nil
}

// ExportProject 单项目导出, 返回编码内容与Content-Type
func (s *exportService) ExportProject(id int64, format string) ([]byte, string, error) {
	if format == "" {
		format = ExportFormatJSON
	}
	if format != ExportFormatJSON && format != ExportFormatCSV {
		return nil, "", pkgErrors.New(pkgErrors.CodeValidationError, "非法的导出格式: "+format)
	}

	project, err := s.exportRepo.SnapshotProject(id)
	if err != nil {
		return nil, "", err
	}

	doc := &PortfolioExport{
		ExportedAt: time.Now().Format(time.RFC3339),
		Projects:   []*model.Project{project},
	}
	switch format {
	case ExportFormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, "", pkgErrors.Wrap(pkgErrors.CodeInternalError, "导出编码失败", err)
		}
		return data, "application/json", nil
	default:
		var buf bytes.Buffer
		if err := encodeCSV(&buf, doc); err != nil {
			return nil, "", pkgErrors.Wrap(pkgErrors.CodeInternalError, "导出编码失败", err)
		}
		return buf.Bytes(), "text/csv", nil
	}
}

func writeJSON(path string, snapshot *PortfolioExport) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snapshot)
}

// writeCSV 扁平化为每项目一行, 子集合列出计数与汇总
func writeCSV(path string, snapshot *PortfolioExport) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return encodeCSV(file, snapshot)
}

func encodeCSV(w io.Writer, snapshot *PortfolioExport) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"id", "name", "status", "priority", "budget_plan", "progress",
		"news_count", "milestone_count", "budget_actual", "risk_count", "team_size",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, p := range snapshot.Projects {
		var actual float64
		for _, item := range p.BudgetItems {
			actual += item.Actual
		}
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Status,
			p.Priority,
			strconv.FormatFloat(p.BudgetPlan, 'f', 2, 64),
			strconv.Itoa(p.Progress),
			strconv.Itoa(len(p.News)),
			strconv.Itoa(len(p.Milestones)),
			strconv.FormatFloat(actual, 'f', 2, 64),
			strconv.Itoa(len(p.Risks)),
			strconv.Itoa(len(p.TeamMembers)),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}
