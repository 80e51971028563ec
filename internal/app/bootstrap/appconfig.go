// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to MentorMatrix.
// The struct is passed to most lifecycle hooks, so any configuration
// needed during startup, request handling, or shutdown lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // secret for signing session cookies (must be strong in production)
	SessionDomain string // cookie domain (blank means current host)

	// Document storage (uploaded project documents)
	StorageLocalPath string // filesystem directory for stored documents
	StorageLocalURL  string // URL prefix the documents are served under

	// Email/SMTP configuration for mentor-request notifications
	MailSMTPHost string
	MailSMTPPort int
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string

	// Site identity, used in emails and links
	SiteName string
	BaseURL  string // e.g. "https://mentormatrix.example.edu"

	// Google OAuth sign-in (optional; disabled when blank)
	GoogleClientID     string
	GoogleClientSecret string
}
