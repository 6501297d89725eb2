package router

import (
	"resto_manager/handler"
	"resto_manager/middleware"
	"resto_manager/model"
	"resto_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)

	dashboard := v1.Group("/dashboard", logger.New())
	dashboard.Get("/summary", middleware.Protected(), handler.GetDashboardSummary)

	sync := v1.Group("/sync", logger.New())
	sync.Post("/daily-metrics", middleware.Protected(), middleware.RequireManager(), validate.SyncDailyMetrics(), handler.SyncDailyMetrics)
	sync.Post("/pnl", middleware.Protected(), middleware.RequireManager(), validate.SyncPnl(), handler.SyncPnl)
	sync.Get("/logs", middleware.Protected(), middleware.RequireManager(), handler.GetSyncLogs)

	pnl := v1.Group("/pnl", logger.New())
	pnl.Get("/", middleware.Protected(), middleware.RequireManager(), handler.GetPnl)
	pnl.Get("/export", middleware.Protected(), middleware.RequireManager(), handler.ExportPnlReport)

	metrics := v1.Group("/metrics", logger.New())
	metrics.Get("/", middleware.Protected(), handler.GetMetrics)

	target := v1.Group("/targets", logger.New())
	target.Get("/", middleware.Protected(), handler.GetTargets)
	target.Post("/", middleware.Protected(), middleware.RequireManager(), validate.Body[model.CreateTargetInput]("inputTarget"), handler.CreateTarget)
	target.Put("/:targetId", middleware.Protected(), middleware.RequireManager(), validate.GetById("targetId"), validate.Body[model.UpdateTargetInput]("inputTarget"), handler.UpdateTarget)
	target.Delete("/:targetId", middleware.Protected(), middleware.RequireManager(), validate.GetById("targetId"), handler.DeleteTarget)

	shift := v1.Group("/shifts", logger.New())
	shift.Get("/", middleware.Protected(), handler.GetShifts)
	shift.Post("/", middleware.Protected(), middleware.RequireManager(), validate.Body[model.CreateShiftInput]("inputShift"), handler.CreateShift)
	shift.Patch("/:shiftId/status", middleware.Protected(), validate.GetById("shiftId"), validate.Body[model.UpdateShiftStatusInput]("inputShiftStatus"), handler.UpdateShiftStatus)
	shift.Delete("/:shiftId", middleware.Protected(), middleware.RequireManager(), validate.GetById("shiftId"), handler.DeleteShift)

	compliance := v1.Group("/compliance", logger.New())
	compliance.Get("/", middleware.Protected(), handler.GetComplianceItems)
	compliance.Post("/", middleware.Protected(), middleware.RequireManager(), validate.Body[model.CreateComplianceInput]("inputCompliance"), handler.CreateComplianceItem)
	compliance.Put("/:itemId", middleware.Protected(), middleware.RequireManager(), validate.GetById("itemId"), validate.Body[model.UpdateComplianceInput]("inputCompliance"), handler.UpdateComplianceItem)
	compliance.Delete("/:itemId", middleware.Protected(), middleware.RequireManager(), validate.GetById("itemId"), handler.DeleteComplianceItem)

	review := v1.Group("/reviews", logger.New())
	review.Get("/", middleware.Protected(), handler.GetReviews)
	review.Post("/", middleware.Protected(), validate.Body[model.CreateReviewInput]("inputReview"), handler.CreateReview)

	announcement := v1.Group("/announcements", logger.New())
	announcement.Get("/", middleware.Protected(), handler.GetAnnouncements)
	announcement.Post("/", middleware.Protected(), middleware.RequireManager(), validate.Body[model.CreateAnnouncementInput]("inputAnnouncement"), handler.CreateAnnouncement)
}
