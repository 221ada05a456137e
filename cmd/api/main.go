package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mateoquintero/venturelink-backend/api/controllers"
	"github.com/mateoquintero/venturelink-backend/api/routes"
	"github.com/mateoquintero/venturelink-backend/internal/analytics"
	"github.com/mateoquintero/venturelink-backend/internal/assistant"
	"github.com/mateoquintero/venturelink-backend/internal/auth"
	"github.com/mateoquintero/venturelink-backend/internal/automation"
	"github.com/mateoquintero/venturelink-backend/internal/campaigns"
	"github.com/mateoquintero/venturelink-backend/internal/collaborations"
	"github.com/mateoquintero/venturelink-backend/internal/community"
	"github.com/mateoquintero/venturelink-backend/internal/content"
	"github.com/mateoquintero/venturelink-backend/internal/fundraising"
	"github.com/mateoquintero/venturelink-backend/internal/scoring"
	"github.com/mateoquintero/venturelink-backend/internal/trust"
	"github.com/mateoquintero/venturelink-backend/internal/users"
	"github.com/mateoquintero/venturelink-backend/internal/vendors"
	"github.com/mateoquintero/venturelink-backend/pkg/auth/session"
	"github.com/mateoquintero/venturelink-backend/pkg/config"
	"github.com/mateoquintero/venturelink-backend/pkg/db"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
	"github.com/mateoquintero/venturelink-backend/pkg/migrate"
	"github.com/mateoquintero/venturelink-backend/pkg/openai"
	"github.com/mateoquintero/venturelink-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	svcs, err := buildServices(cfg, logg, dbClient, sessionManager)
	if err != nil {
		logg.Error(context.Background(), "failed to wire services", err)
		os.Exit(1)
	}

	readiness := map[string]controllers.Pinger{
		"database": dbClient,
		"redis":    redisClient,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, readiness, sessionManager, svcs),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func buildServices(cfg *config.Config, logg *logger.Logger, dbClient *db.Client, sessions *session.Manager) (routes.Services, error) {
	gormDB := dbClient.DB()
	engine := scoring.New(scoring.DefaultConfig())

	userRepo := users.NewRepository(gormDB)
	vendorRepo := vendors.NewRepository(gormDB)
	collabRepo := collaborations.NewRepository(gormDB)
	trustRepo := trust.NewRepository(gormDB)
	pitchRepo := fundraising.NewRepository(gormDB)
	campaignRepo := campaigns.NewRepository(gormDB)
	contentRepo := content.NewRepository(gormDB)
	automationRepo := automation.NewRepository(gormDB)
	analyticsRepo := analytics.NewRepository(gormDB)
	assistantRepo := assistant.NewRepository(gormDB)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessions,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		return routes.Services{}, err
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return routes.Services{}, err
	}

	vendorService, err := vendors.NewService(vendorRepo)
	if err != nil {
		return routes.Services{}, err
	}

	communityService, err := community.NewService(community.ServiceParams{
		VendorRepo: vendorRepo,
		CollabRepo: collabRepo,
		Engine:     engine,
	})
	if err != nil {
		return routes.Services{}, err
	}

	collaborationService, err := collaborations.NewService(collaborations.ServiceParams{
		VendorRepo: vendorRepo,
		CollabRepo: collabRepo,
		Engine:     engine,
	})
	if err != nil {
		return routes.Services{}, err
	}

	fundraisingService, err := fundraising.NewService(fundraising.ServiceParams{
		PitchRepo:  pitchRepo,
		VendorRepo: vendorRepo,
		Engine:     engine,
	})
	if err != nil {
		return routes.Services{}, err
	}

	trustService, err := trust.NewService(trust.ServiceParams{
		TrustRepo:  trustRepo,
		CollabRepo: collabRepo,
		Engine:     engine,
	})
	if err != nil {
		return routes.Services{}, err
	}

	campaignService, err := campaigns.NewService(campaigns.ServiceParams{
		CampaignRepo: campaignRepo,
		VendorRepo:   vendorRepo,
		Engine:       engine,
	})
	if err != nil {
		return routes.Services{}, err
	}

	contentService, err := content.NewService(content.ServiceParams{
		ContentRepo: contentRepo,
		VendorRepo:  vendorRepo,
	})
	if err != nil {
		return routes.Services{}, err
	}

	automationService, err := automation.NewService(automation.ServiceParams{
		AutomationRepo: automationRepo,
		VendorRepo:     vendorRepo,
	})
	if err != nil {
		return routes.Services{}, err
	}

	analyticsService, err := analytics.NewService(analytics.ServiceParams{Repo: analyticsRepo})
	if err != nil {
		return routes.Services{}, err
	}

	assistantParams := assistant.ServiceParams{
		RecommendationRepo: assistantRepo,
		VendorRepo:         vendorRepo,
		Logger:             zerolog.New(os.Stderr).With().Timestamp().Str("component", "assistant").Logger(),
	}
	if cfg.Assistant.Enabled() {
		advisor, err := openai.NewClient(
			cfg.Assistant.APIKey,
			openai.WithBaseURL(cfg.Assistant.BaseURL),
			openai.WithModel(cfg.Assistant.Model),
			openai.WithHTTPClient(&http.Client{Timeout: cfg.Assistant.Timeout}),
		)
		if err != nil {
			return routes.Services{}, err
		}
		assistantParams.Advisor = advisor
	} else {
		logg.Warn(context.Background(), "assistant api key not set, using fallback recommendations")
	}

	assistantService, err := assistant.NewService(assistantParams)
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Auth:           authService,
		Register:       registerService,
		Vendors:        vendorService,
		Community:      communityService,
		Collaborations: collaborationService,
		Fundraising:    fundraisingService,
		Trust:          trustService,
		Campaigns:      campaignService,
		Content:        contentService,
		Automation:     automationService,
		Analytics:      analyticsService,
		Assistant:      assistantService,
	}, nil
}
