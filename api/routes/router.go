package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mateoquintero/venturelink-backend/api/controllers"
	"github.com/mateoquintero/venturelink-backend/api/middleware"
	"github.com/mateoquintero/venturelink-backend/internal/analytics"
	"github.com/mateoquintero/venturelink-backend/internal/assistant"
	"github.com/mateoquintero/venturelink-backend/internal/auth"
	"github.com/mateoquintero/venturelink-backend/internal/automation"
	"github.com/mateoquintero/venturelink-backend/internal/campaigns"
	"github.com/mateoquintero/venturelink-backend/internal/collaborations"
	"github.com/mateoquintero/venturelink-backend/internal/community"
	"github.com/mateoquintero/venturelink-backend/internal/content"
	"github.com/mateoquintero/venturelink-backend/internal/fundraising"
	"github.com/mateoquintero/venturelink-backend/internal/trust"
	"github.com/mateoquintero/venturelink-backend/internal/vendors"
	"github.com/mateoquintero/venturelink-backend/pkg/auth/session"
	"github.com/mateoquintero/venturelink-backend/pkg/config"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

// Services bundles every domain service the router exposes.
type Services struct {
	Auth           auth.Service
	Register       auth.RegisterService
	Vendors        vendors.Service
	Community      community.Service
	Collaborations collaborations.Service
	Fundraising    fundraising.Service
	Trust          trust.Service
	Campaigns      campaigns.Service
	Content        content.Service
	Automation     automation.Service
	Analytics      analytics.Service
	Assistant      assistant.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	readiness map[string]controllers.Pinger,
	sessions session.AccessSessionChecker,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(svcs.Register, logg))
		r.Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.Get("/validate", controllers.AuthValidate(svcs.Auth, logg))
		r.With(middleware.Auth(cfg.JWT, sessions, logg)).
			Post("/logout", controllers.AuthLogout(svcs.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Route("/vendors", func(r chi.Router) {
			r.Post("/", controllers.VendorCreate(svcs.Vendors, logg))
			r.Get("/", controllers.VendorList(svcs.Vendors, logg))
			r.Get("/me", controllers.VendorMe(svcs.Vendors, logg))
			r.Get("/{vendorId}", controllers.VendorGet(svcs.Vendors, logg))
			r.Put("/{vendorId}", controllers.VendorUpdate(svcs.Vendors, logg))
			r.Get("/{vendorId}/needs", controllers.VendorNeeds(svcs.Vendors, logg))
		})

		r.Route("/community", func(r chi.Router) {
			r.Get("/groups", controllers.CommunityGroups(svcs.Community, logg))
			r.Get("/recommendations/{vendorId}", controllers.CommunityRecommendations(svcs.Community, logg))
			r.Get("/similar-vendors/{vendorId}", controllers.SimilarVendors(svcs.Community, logg))
		})

		r.Route("/collaboration", func(r chi.Router) {
			r.Get("/matches/{vendorId}", controllers.CollaborationMatches(svcs.Collaborations, logg))
			r.Post("/initiate", controllers.CollaborationInitiate(svcs.Collaborations, logg))
			r.Get("/vendor/{vendorId}", controllers.CollaborationsByVendor(svcs.Collaborations, logg))
		})

		r.Route("/fundraising", func(r chi.Router) {
			r.Post("/pitch", controllers.PitchCreate(svcs.Fundraising, logg))
			r.Get("/pitch/{pitchId}", controllers.PitchGet(svcs.Fundraising, logg))
			r.Get("/pitch/{pitchId}/investor-matches", controllers.PitchInvestorMatches(svcs.Fundraising, logg))
			r.Get("/pitch-template/{industry}", controllers.PitchTemplate(svcs.Fundraising, logg))
			r.Get("/pitches/vendor/{vendorId}", controllers.PitchesByVendor(svcs.Fundraising, logg))
		})

		r.Route("/trust", func(r chi.Router) {
			r.Get("/score/{vendorId}", controllers.TrustScore(svcs.Trust, logg))
			r.Get("/report/{vendorId}", controllers.TrustReport(svcs.Trust, logg))
			r.Post("/review", controllers.TrustAddReview(svcs.Trust, logg))
			r.Post("/event", controllers.TrustAddEvent(svcs.Trust, logg))
		})

		r.Route("/advertising", func(r chi.Router) {
			r.Post("/campaign", controllers.CampaignCreate(svcs.Campaigns, logg))
			r.Get("/campaign/{campaignId}", controllers.CampaignGet(svcs.Campaigns, logg))
			r.Get("/campaign/{campaignId}/optimize", controllers.CampaignOptimize(svcs.Campaigns, logg))
			r.Get("/platform-recommendations/{vendorId}", controllers.CampaignPlatformRecommendations(svcs.Campaigns, logg))
			r.Get("/campaigns/vendor/{vendorId}", controllers.CampaignsByVendor(svcs.Campaigns, logg))
		})

		r.Route("/content", func(r chi.Router) {
			r.Get("/generate-ideas/{vendorId}", controllers.ContentIdeas(svcs.Content, logg))
			r.Post("/schedule", controllers.ContentSchedule(svcs.Content, logg))
			r.Post("/hashtags", controllers.ContentHashtags(svcs.Content, logg))
			r.Get("/calendar/{vendorId}", controllers.ContentCalendar(svcs.Content, logg))
			r.Get("/{contentId}", controllers.ContentGet(svcs.Content, logg))
		})

		r.Route("/automation", func(r chi.Router) {
			r.Get("/analyze/{vendorId}", controllers.AutomationAnalyze(svcs.Automation, logg))
			r.Post("/setup", controllers.AutomationSetup(svcs.Automation, logg))
			r.Get("/settings/{vendorId}", controllers.AutomationSettings(svcs.Automation, logg))
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/dashboard/{vendorId}", controllers.AnalyticsDashboard(svcs.Analytics, logg))
			r.Get("/insights/{vendorId}", controllers.AnalyticsInsights(svcs.Analytics, logg))
			r.Get("/trends/{vendorId}", controllers.AnalyticsTrends(svcs.Analytics, logg))
		})

		r.Route("/ai", func(r chi.Router) {
			r.Get("/recommendations/{vendorId}", controllers.AssistantRecommendations(svcs.Assistant, logg))
			r.Post("/ad-copy", controllers.AssistantAdCopy(svcs.Assistant, logg))
		})
	})

	return r
}
