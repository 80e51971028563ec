// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authgooglefeature "github.com/Garvit-Adlakha/mentormatrix/internal/app/features/authgoogle"
	healthfeature "github.com/Garvit-Adlakha/mentormatrix/internal/app/features/health"
	loginfeature "github.com/Garvit-Adlakha/mentormatrix/internal/app/features/login"
	logoutfeature "github.com/Garvit-Adlakha/mentormatrix/internal/app/features/logout"
	mentorsfeature "github.com/Garvit-Adlakha/mentormatrix/internal/app/features/mentors"
	profilefeature "github.com/Garvit-Adlakha/mentormatrix/internal/app/features/profile"
	projectsfeature "github.com/Garvit-Adlakha/mentormatrix/internal/app/features/projects"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/services/projectlifecycle"
	userstore "github.com/Garvit-Adlakha/mentormatrix/internal/app/store/users"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/auth"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/mailer"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/media"
	"github.com/Garvit-Adlakha/mentormatrix/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for the app.
//
// WAFFLE calls this after configuration, DB connection, schema setup,
// and Startup have completed. It assembles the shared collaborators
// (media store, mailer), the lifecycle service, and the feature
// routers, and wires the session middleware around them.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	mediaStore, err := media.NewLocalStore(appCfg.StorageLocalPath, appCfg.StorageLocalURL, logger)
	if err != nil {
		logger.Error("media store init failed", zap.Error(err))
		return nil, err
	}

	var mail mailer.Sender
	if appCfg.MailSMTPHost != "" {
		smtp, err := mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     appCfg.MailSMTPHost,
			Port:     appCfg.MailSMTPPort,
			Username: appCfg.MailSMTPUser,
			Password: appCfg.MailSMTPPass,
			From:     appCfg.MailFrom,
		})
		if err != nil {
			logger.Error("mailer init failed", zap.Error(err))
			return nil, err
		}
		mail = smtp
	} else {
		logger.Warn("no SMTP host configured; mentor request emails disabled")
	}

	users := userstore.New(deps.MongoDatabase)
	lifecycle := projectlifecycle.New(deps.MongoDatabase, projectlifecycle.Config{
		Media:    mediaStore,
		Mail:     mail,
		SiteName: appCfg.SiteName,
		BaseURL:  appCfg.BaseURL,
		Log:      logger,
	})

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged
	// in, making the current user available via auth.CurrentUser(r).
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.MongoClient, logger)))

	// Stored project documents, served read-only under the configured
	// URL prefix.
	r.Handle(appCfg.StorageLocalURL+"/*",
		http.StripPrefix(appCfg.StorageLocalURL+"/",
			http.FileServer(http.Dir(mediaStore.Root()))))

	// Authentication.
	r.Mount("/auth/login", loginfeature.Routes(loginfeature.NewHandler(users, ratelimit.NewLoginLimiter(), logger)))
	r.Mount("/auth/logout", logoutfeature.Routes(logoutfeature.NewHandler(logger)))

	googleHandler := authgooglefeature.NewHandler(users,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret,
		appCfg.BaseURL, appCfg.SessionKey, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// The API proper, all behind RequireSignedIn.
	r.Route("/api", func(api chi.Router) {
		api.Use(auth.RequireSignedIn)
		api.Mount("/projects", projectsfeature.Routes(projectsfeature.NewHandler(lifecycle, logger)))
		api.Mount("/mentors", mentorsfeature.Routes(mentorsfeature.NewHandler(users, logger)))
		api.Mount("/profile", profilefeature.Routes(profilefeature.NewHandler(users, logger)))
	})

	return r, nil
}
