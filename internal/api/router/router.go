package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "portfolio-dashboard/docs"
	"portfolio-dashboard/internal/api/handler"
	"portfolio-dashboard/internal/api/middleware"
	"portfolio-dashboard/internal/pkg/config"
	"portfolio-dashboard/internal/repository"
	"portfolio-dashboard/internal/service"
	"portfolio-dashboard/internal/view"
)

// Setup 设置路由
func Setup(cfg *config.Config) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 获取数据库连接
	db := cfg.DB.(*gorm.DB)

	// 初始化Repository
	projectRepo := repository.NewProjectRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	budgetRepo := repository.NewBudgetItemRepository(db)
	riskRepo := repository.NewRiskRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	exportRepo := repository.NewExportRepository(db)

	// 初始化Service
	projectService := service.NewProjectService(projectRepo)
	newsService := service.NewNewsService(newsRepo, projectRepo)
	milestoneService := service.NewMilestoneService(milestoneRepo, projectRepo)
	budgetService := service.NewBudgetItemService(budgetRepo, projectRepo)
	riskService := service.NewRiskService(riskRepo, projectRepo)
	memberService := service.NewTeamMemberService(memberRepo, projectRepo)
	statsService := service.NewStatsService(statsRepo)
	exportService := service.NewExportService(exportRepo, &cfg.Export)

	// 视图同步引擎
	viewEngine := view.NewEngine(view.Services{
		Project:    projectService,
		News:       newsService,
		Milestone:  milestoneService,
		BudgetItem: budgetService,
		Risk:       riskService,
		TeamMember: memberService,
		Stats:      statsService,
	})

	// 初始化Handler
	projectHandler := handler.NewProjectHandler(projectService)
	newsHandler := handler.NewNewsHandler(newsService)
	milestoneHandler := handler.NewMilestoneHandler(milestoneService)
	budgetHandler := handler.NewBudgetItemHandler(budgetService)
	riskHandler := handler.NewRiskHandler(riskService)
	memberHandler := handler.NewTeamMemberHandler(memberService)
	statsHandler := handler.NewStatsHandler(statsService)
	exportHandler := handler.NewExportHandler(exportService)
	viewHandler := handler.NewViewHandler(viewEngine)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 项目管理
		groupProject := v1.Group("/project")
		groupProjects := v1.Group("/projects")
		{
			groupProject.POST("", projectHandler.Create)       // 创建项目
			groupProjects.GET("", projectHandler.List)         // 列表查询（状态过滤/搜索/排序）
			groupProject.GET("", projectHandler.GetByID)       // 获取详情（含聚合指标）
			groupProject.PUT("", projectHandler.Update)        // 更新项目
			groupProject.DELETE("/:id", projectHandler.Delete) // 删除项目（级联）

			// 项目从属资源
			groupProject.POST("/:id/news", newsHandler.Add)
			groupProject.GET("/:id/news", newsHandler.List)
			groupProject.DELETE("/:id/news/:newsId", newsHandler.Delete)

			groupProject.POST("/:id/milestones", milestoneHandler.Add)
			groupProject.GET("/:id/milestones", milestoneHandler.List)
			groupProject.PUT("/:id/milestones/:milestoneId", milestoneHandler.Update)
			groupProject.DELETE("/:id/milestones/:milestoneId", milestoneHandler.Delete)

			groupProject.POST("/:id/budget-items", budgetHandler.Add)
			groupProject.GET("/:id/budget-items", budgetHandler.List)
			groupProject.DELETE("/:id/budget-items/:itemId", budgetHandler.Delete)

			groupProject.POST("/:id/risks", riskHandler.Add)
			groupProject.GET("/:id/risks", riskHandler.List)
			groupProject.PUT("/:id/risks/:riskId", riskHandler.Update)
			groupProject.DELETE("/:id/risks/:riskId", riskHandler.Delete)

			groupProject.POST("/:id/team-members", memberHandler.Add)
			groupProject.GET("/:id/team-members", memberHandler.List)
			groupProject.DELETE("/:id/team-members/:memberId", memberHandler.Delete)

			// 导出
			groupProject.GET("/:id/export", exportHandler.ExportProject)
		}

		// 看板统计
		v1.GET("/dashboard/stats", statsHandler.Dashboard)

		// 全量导出
		v1.POST("/export", exportHandler.ExportAll)

		// 视图同步引擎
		groupView := v1.Group("/view")
		{
			groupView.GET("/regions", viewHandler.Regions)
			groupView.POST("/signals", viewHandler.SetSignal)
			groupView.GET("/route", viewHandler.ParseRoute)
		}
	}

	return r
}
