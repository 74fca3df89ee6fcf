package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"portfolio-dashboard/internal/pkg/config"
	"portfolio-dashboard/internal/service"
)

// Scheduler 调度器
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	exportSvc     service.ExportService
	cronSchedules map[string]cron.EntryID // 存储任务ID，便于管理
}

// NewScheduler 创建调度器
func NewScheduler(logger *zap.Logger, exportSvc service.ExportService) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:          c,
		logger:        logger,
		exportSvc:     exportSvc,
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cfg *config.Config) error {
	log := s.logger.Sugar()

	if !cfg.Export.Enabled {
		log.Info("定时导出未启用, 跳过调度器注册")
		return nil
	}

	log.Info("启动定时任务调度器...")

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := cfg.Export.Cron
	if cronExpr == "" {
		cronExpr = "0 0 2 * * *" // 默认: 每天凌晨2点
		log.Warn("未配置export.cron，使用默认值", zap.String("cron", cronExpr))
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		log.Info("执行定时任务: 项目组合导出")
		path, err := s.exportSvc.ExportToFile("")
		if err != nil {
			log.Errorf("项目组合导出任务执行失败: %v", err)
			return
		}
		log.Infof("项目组合导出完成: %s", path)
	})

	if err != nil {
		log.Errorf("注册导出任务失败: cron=%v err=%v", cronExpr, err)
		return err
	}

	s.cronSchedules["portfolio_export"] = entryID
	log.Infof("项目组合导出任务已注册: %s entry_id=%d", cronExpr, entryID)

	// 启动 cron
	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 停止 cron（等待正在执行的任务完成）
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// TriggerExport 手动触发导出（用于测试或手动触发）
func (s *Scheduler) TriggerExport() (string, error) {
	return s.exportSvc.ExportToFile("")
}
