package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	// Posting catalog: HTTP(S) URL or local path.
	CatalogSource string

	// Where the shortlist and other state files live.
	StateDir string

	// Civil time zone anchoring expiry math.
	TimeZone string

	// SFTP drop for published exports.
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool

	// SMTP for the expiring-shortlist digest.
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string

	// Gemini for variant generation.
	GeminiAPIKey string
	GeminiModel  string
	GeminiRPM    int
}

func Load() Config {
	return Config{
		CatalogSource: getenv("ROP_CATALOG", "ROP_Courses.json"),
		StateDir:      getenv("ROP_STATE_DIR", defaultStateDir()),
		TimeZone:      getenv("ROP_TIMEZONE", ""),

		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", false),

		SMTPServer: getenv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:   getenvInt("SMTP_PORT", 587),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		FromEmail:  os.Getenv("ROP_FROM_EMAIL"),
		ToEmail:    os.Getenv("ROP_TO_EMAIL"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", ""),
		GeminiRPM:    getenvInt("GEMINI_RPM", 10),
	}
}

// ShortlistPath is the well-known location of the shortlist JSON array.
func (c Config) ShortlistPath() string {
	return filepath.Join(c.StateDir, "shortlist.json")
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "ropboard")
	}
	return filepath.Join(os.TempDir(), "ropboard")
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
