package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables

	S3BucketName    string
	S3PublicBaseURL string // base URL under which uploaded objects are reachable

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	// OwnerEmail receives contact-form notifications.
	OwnerEmail string

	// AdminPasswordHash is a bcrypt hash of the back-office password.
	AdminPasswordHash string
	JWTSecret         string
	JWTExpiry         time.Duration

	OTPTTL       time.Duration
	FetchTimeout time.Duration
	// CVFilename is the fixed attachment name returned on every CV download,
	// regardless of the originally uploaded file's name.
	CVFilename string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Subjects  string
	Profile   string
	Contacts  string
	Projects  string
	Education string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Subjects:  getEnv("DYNAMO_TABLE_CV_SUBJECTS", "cv_subjects"),
			Profile:   getEnv("DYNAMO_TABLE_PROFILE", "profile"),
			Contacts:  getEnv("DYNAMO_TABLE_CONTACTS", "contacts"),
			Projects:  getEnv("DYNAMO_TABLE_PROJECTS", "projects"),
			Education: getEnv("DYNAMO_TABLE_EDUCATION", "education"),
		},

		S3BucketName:    getEnv("S3_BUCKET_NAME", "portfolio-files"),
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		OwnerEmail: getEnv("OWNER_EMAIL", ""),

		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTExpiry:         time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,

		OTPTTL:       time.Duration(getEnvInt("OTP_TTL_MINUTES", 10)) * time.Minute,
		FetchTimeout: time.Duration(getEnvInt("CV_FETCH_TIMEOUT_SECONDS", 15)) * time.Second,
		CVFilename:   getEnv("CV_ATTACHMENT_NAME", "cv.pdf"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
