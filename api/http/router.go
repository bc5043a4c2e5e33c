package http

import (
	"github.com/gofiber/fiber/v2"

	"benchboard/api/http/handlers"
	"benchboard/pkg/security/jwt"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	consultants *handlers.ConsultantHandler,
	resumes *handlers.ResumeHandler,
	shortlist *handlers.ShortlistHandler,
	feedback *handlers.FeedbackHandler,
	leaves *handlers.LeaveHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	admin := jwt.RequireAdmin()

	selfOrAdmin := consultants.RequireSelfOrAdmin()

	cg := v1.Group("/consultants", authMW)
	cg.Get("/", consultants.List)
	cg.Post("/", admin, consultants.Create)
	cg.Get("/me", consultants.Me)
	cg.Get("/:id", consultants.Get)
	cg.Put("/:id", consultants.Update)
	cg.Delete("/:id", admin, consultants.Delete)
	cg.Post("/:id/attendance", selfOrAdmin, consultants.MarkAttendance)
	cg.Post("/:id/opportunities", selfOrAdmin, consultants.AddOpportunity)
	cg.Post("/:id/training", admin, consultants.AssignTraining)
	cg.Delete("/:id/training", admin, consultants.UnassignTraining)
	cg.Post("/:id/training/complete", selfOrAdmin, consultants.CompleteTraining)
	cg.Post("/:id/resume", selfOrAdmin, resumes.Submit)
	cg.Get("/:id/resume", selfOrAdmin, resumes.History)

	// Shortlisting is an admin tool: it searches the whole bench.
	v1.Post("/shortlist", authMW, admin, shortlist.Shortlist)

	v1.Post("/feedback", authMW, feedback.Generate)

	lg := v1.Group("/leaves", authMW)
	lg.Post("/", leaves.Create)
	lg.Get("/", leaves.List)
	lg.Put("/:id/status", admin, leaves.Decide)
}
