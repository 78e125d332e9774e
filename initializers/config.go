package initializers

import "os"

// Config collects the deployment knobs in one place instead of reading
// os.Getenv throughout the handlers.
type Config struct {
	DatabaseURL string
	// AutoApprovePrayers decides whether public submissions go straight
	// to Approved or wait in Pending for moderation.
	AutoApprovePrayers bool
	UploadDir          string
	ContentDir         string
	AdminAPIKey        string
	ResendAPIKey       string
	ContactNotifyEmail string
}

// LoadConfig builds the config from the environment. Defaults match the
// behavior of the original site: submissions auto-approve and files live
// under ./uploads.
func LoadConfig() Config {
	return Config{
		DatabaseURL:        os.Getenv("DB_URL"),
		AutoApprovePrayers: os.Getenv("AUTO_APPROVE_PRAYERS") != "false",
		UploadDir:          envOr("UPLOAD_DIR", "./uploads"),
		ContentDir:         envOr("CONTENT_DIR", "./content"),
		AdminAPIKey:        os.Getenv("ADMIN_API_KEY"),
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		ContactNotifyEmail: os.Getenv("CONTACT_NOTIFY_EMAIL"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
