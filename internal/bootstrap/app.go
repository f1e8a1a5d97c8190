package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"skillmingle-backend/internal/assessment"
	googleauth "skillmingle-backend/internal/auth"
	"skillmingle-backend/internal/extract"
	"skillmingle-backend/internal/profile"
	"skillmingle-backend/internal/shared/config"
	"skillmingle-backend/internal/shared/server"
	"skillmingle-backend/internal/shared/storage/db"
	"skillmingle-backend/internal/skills"
	"skillmingle-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	UsersRepo   users.Repo
	ProfileRepo profile.Repo
	SkillsRepo  skills.Repo

	Catalog *assessment.Catalog

	UsersService      *users.Service
	ProfileService    *profile.Service
	SkillsService     *skills.Service
	AssessmentService *assessment.Service

	UsersHandler      *users.Handler
	ProfileHandler    *profile.Handler
	SkillsHandler     *skills.Handler
	AssessmentHandler *assessment.Handler
	GoogleAuth        *googleauth.GoogleService
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if sqlDB != nil {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	app := &App{Config: cfg, DB: sqlDB}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		UsersHandler:      app.UsersHandler,
		ProfileHandler:    app.ProfileHandler,
		SkillsHandler:     app.SkillsHandler,
		AssessmentHandler: app.AssessmentHandler,
		GoogleAuth:        app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ProfileRepo = &profile.PGRepo{DB: app.DB}
		app.SkillsRepo = &skills.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.ProfileRepo = profile.NewMemoryRepo()
		app.SkillsRepo = skills.NewMemoryRepo()
	}

	app.Catalog = assessment.NewCatalog()

	app.UsersService = users.NewService(app.UsersRepo, app.ProfileRepo, app.Config.BcryptCost)
	app.SkillsService = skills.NewService(app.SkillsRepo)
	app.ProfileService = &profile.Service{
		Repo:    app.ProfileRepo,
		Ident:   identAdapter{users: app.UsersService},
		Catalog: app.SkillsService,
		Extract: extract.Extractor{},
	}
	app.AssessmentService = assessment.NewService(
		app.Catalog,
		assessment.NewEvaluator(app.Config.IntermediateCutoff),
		app.ProfileRepo,
	)

	app.UsersHandler = users.NewHandler(app.UsersService)
	app.ProfileHandler = profile.NewHandler(app.ProfileService)
	app.SkillsHandler = skills.NewHandler(app.SkillsService)
	app.AssessmentHandler = assessment.NewHandler(app.AssessmentService)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)
}

// identAdapter narrows the users service to what the profile view needs.
type identAdapter struct {
	users *users.Service
}

func (a identAdapter) Identity(ctx context.Context, userID string) (profile.Identity, error) {
	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return profile.Identity{}, err
	}
	return profile.Identity{Name: user.Name, Email: user.Email}, nil
}

func (a identAdapter) UpdateName(ctx context.Context, userID, name string) error {
	return a.users.UpdateName(ctx, userID, name)
}
