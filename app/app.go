// Package app assembles the services and the HTTP server.
package app

import (
	"context"
	"fmt"
	"log"

	"learnhub/catalog"
	"learnhub/config"
	authController "learnhub/controllers/auth"
	catalogController "learnhub/controllers/catalog"
	courseController "learnhub/controllers/course"
	examController "learnhub/controllers/exam"
	userController "learnhub/controllers/userControllers"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	authRoutes "learnhub/routers/authRoutes"
	catalogRoutes "learnhub/routers/catalogRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	examRoutes "learnhub/routers/examRoutes"
	userProfileRoutes "learnhub/routers/userRoutes"
	"learnhub/services"
	"learnhub/services/enrollment"
	"learnhub/services/examsession"
	"learnhub/services/identity"
	"learnhub/services/profile"
	"learnhub/services/results"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type App struct {
	cfg   *config.Config
	store database.Store

	Catalog     *catalog.Catalog
	Identity    *identity.Service
	Enrollments *enrollment.Ledger
	Results     *results.Ledger
	Sessions    *examsession.Manager
	Profile     *profile.Service
}

// New builds every service on top of store and restores the persisted session.
func New(ctx context.Context, cfg *config.Config, store database.Store, scheduler utils.Scheduler) (*App, error) {
	cat := catalog.New()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	users := identity.New(store)
	if err := users.Init(ctx); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	a := &App{
		cfg:         cfg,
		store:       store,
		Catalog:     cat,
		Identity:    users,
		Enrollments: enrollment.NewLedger(store, users),
		Results:     results.NewLedger(store, users),
	}

	// each session records under its own user, even if the signed-in user changes
	recorders := func(u models.User) examsession.Recorder {
		return results.NewLedger(store, services.StaticUser(u))
	}
	a.Sessions = examsession.NewManager(cat, users, recorders, scheduler)
	a.Profile = profile.NewService(cat, users, a.Enrollments, a.Results)

	users.OnLogout(func(u models.User) { a.Sessions.DiscardUser(u.ID) })
	a.registerNotifications()
	return a, nil
}

func (a *App) registerNotifications() {
	if a.cfg.ResultWebhookURL != "" {
		a.Sessions.OnComplete(utils.NewResultSync(a.cfg.ResultWebhookURL).OnExamComplete)
		log.Printf("[APP] Result sync enabled")
	}
	if a.cfg.SendgridAPIKey != "" {
		a.Sessions.OnComplete(utils.NewMailer(a.cfg.SendgridAPIKey, a.cfg.EmailSender).OnExamComplete)
		log.Printf("[APP] Exam emails enabled")
	}
}

// Router returns the fiber app with every route registered.
func (a *App) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "LearnHub",
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	guard := middleware.SessionGuard(a.Identity)
	enrollments := courseController.NewEnrollmentController(a.Catalog, a.Enrollments)

	authRoutes.SetupAuthRoutes(app, authController.NewAuthController(a.Identity), guard)
	catalogRoutes.SetupCatalogRoutes(app, catalogController.NewCatalogController(a.Catalog))
	courseRoutes.SetupCourseRoutes(app, enrollments, guard)
	examRoutes.SetupExamRoutes(app, examController.NewExamController(a.Catalog, a.Sessions, a.Results), guard, a.cfg.ExamRateLimit)
	userProfileRoutes.SetupUserRoutes(app, userController.NewProfileController(a.Profile), enrollments, guard)

	return app
}

// Close drops in-flight attempts and releases the identity state.
func (a *App) Close() {
	a.Sessions.DiscardAll()
	a.Identity.Close()
}
