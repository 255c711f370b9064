package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/portfolio-api/internal/application/admin"
	"github.com/portfolio-api/internal/application/contact"
	"github.com/portfolio-api/internal/application/cvaccess"
	"github.com/portfolio-api/internal/application/education"
	"github.com/portfolio-api/internal/application/profile"
	"github.com/portfolio-api/internal/application/project"
	"github.com/portfolio-api/internal/application/upload"
	"github.com/portfolio-api/internal/config"
	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/infrastructure/dynamo"
	"github.com/portfolio-api/internal/infrastructure/fetch"
	jwtinfra "github.com/portfolio-api/internal/infrastructure/jwt"
	s3infra "github.com/portfolio-api/internal/infrastructure/s3"
	"github.com/portfolio-api/internal/infrastructure/smtp"
	"github.com/portfolio-api/internal/transport/http/handler"
	appmiddleware "github.com/portfolio-api/internal/transport/http/middleware"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	SubjectRepo   *dynamo.SubjectRepo
	ProfileRepo   *dynamo.ProfileRepo
	ContactRepo   *dynamo.ContactRepo
	ProjectRepo   *dynamo.ProjectRepo
	EducationRepo *dynamo.EducationRepo
	S3Store       *s3infra.Store
	Mailer        smtp.Mailer
	Fetcher       fetch.Fetcher
	JWTProvider   *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10, applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	cvSvc := cvaccess.NewService(cvaccess.ServiceDeps{
		SubjectRepo: deps.SubjectRepo,
		ProfileRepo: deps.ProfileRepo,
		Mailer:      deps.Mailer,
		Fetcher:     deps.Fetcher,
		OTPTTL:      cfg.OTPTTL,
		CVFilename:  cfg.CVFilename,
	})
	contactSvc := contact.NewService(contact.ServiceDeps{
		ContactRepo: deps.ContactRepo,
		Mailer:      deps.Mailer,
		OwnerEmail:  cfg.OwnerEmail,
	})
	profileSvc := profile.NewService(deps.ProfileRepo)
	projectSvc := project.NewService(deps.ProjectRepo)
	educationSvc := education.NewService(deps.EducationRepo)
	uploadSvc := upload.NewService(deps.S3Store)
	adminDeps := admin.ServiceDeps{PasswordHash: cfg.AdminPasswordHash}
	if deps.JWTProvider != nil {
		adminDeps.Signer = deps.JWTProvider
	}
	adminSvc := admin.NewService(adminDeps)

	healthH := handler.NewHealthHandler()
	cvH := handler.NewCVAccessHandler(cvSvc)
	contactH := handler.NewContactHandler(contactSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	projectH := handler.NewProjectHandler(projectSvc)
	educationH := handler.NewEducationHandler(educationSvc)
	uploadH := handler.NewUploadHandler(uploadSvc)
	adminH := handler.NewAdminHandler(adminSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/cv-access/request-otp", cvH.RequestOTP)
		r.With(sensitiveRL.Limit).Post("/cv-access/verify-otp", cvH.VerifyOTP)
		r.Get("/cv-access/file", cvH.Download)
		r.With(sensitiveRL.Limit).Post("/contacts", contactH.Create)
		r.With(sensitiveRL.Limit).Post("/admin/login", adminH.Login)

		r.Get("/profile", profileH.Get)
		r.Get("/projects", projectH.List)
		r.Get("/projects/{id}", projectH.Get)
		r.Get("/education", educationH.List)
		r.Get("/education/{id}", educationH.Get)

		// ── Admin routes ─────────────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)
			r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

			r.Get("/cv-access/subjects", cvH.ListSubjects)

			r.Get("/contacts", contactH.List)
			r.Post("/contacts/{id}/reply", contactH.Reply)
			r.Delete("/contacts/{id}", contactH.Delete)

			r.Put("/profile", profileH.Update)

			r.Post("/projects", projectH.Create)
			r.Put("/projects/{id}", projectH.Update)
			r.Delete("/projects/{id}", projectH.Delete)

			r.Post("/education", educationH.Create)
			r.Put("/education/{id}", educationH.Update)
			r.Delete("/education/{id}", educationH.Delete)

			r.Post("/uploads", uploadH.Upload)
			r.Delete("/uploads", uploadH.Delete)
		})
	})

	return r
}
