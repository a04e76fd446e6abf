package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr        string
	DatabaseURL string
	Redis       Redis
	Registry    Registry
	Risk        Risk
	Kafka       Kafka

	// TokenSigningKey signs the opaque entity tokens handed to callers.
	TokenSigningKey string

	// ValidateName toggles the legal-name structure and similarity checks in
	// the search operation. Injected here rather than read as ambient global
	// state so tests can flip it per engine instance.
	ValidateName bool
}

// Redis configures the registry snapshot cache. An empty URL disables it.
type Redis struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Registry configures the DGI client.
type Registry struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Risk configures the blacklist screening client. An empty URL selects the
// static screener.
type Risk struct {
	BaseURL string
	Timeout time.Duration
}

// Kafka configures the audit outbox publisher. Empty brokers disable it.
type Kafka struct {
	Brokers      []string
	AuditTopic   string
	PollInterval time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("ALTA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	signingKey := os.Getenv("ALTA_TOKEN_SIGNING_KEY")
	if signingKey == "" {
		// Development default; must be overridden in production.
		signingKey = "dev-secret-key-change-in-production"
	}

	validateName := true
	if v := os.Getenv("ALTA_VALIDATE_NAME"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			validateName = parsed
		}
	}

	kafkaBrokers := []string(nil)
	if v := os.Getenv("ALTA_KAFKA_BROKERS"); v != "" {
		kafkaBrokers = splitNonEmpty(v)
	}
	auditTopic := os.Getenv("ALTA_AUDIT_TOPIC")
	if auditTopic == "" {
		auditTopic = "alta.non-business.audit"
	}

	return Server{
		Addr:            addr,
		DatabaseURL:     os.Getenv("ALTA_DATABASE_URL"),
		TokenSigningKey: signingKey,
		ValidateName:    validateName,
		Redis: Redis{
			URL:          os.Getenv("ALTA_REDIS_URL"),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Registry: Registry{
			BaseURL:  os.Getenv("ALTA_DGI_URL"),
			Timeout:  10 * time.Second,
			CacheTTL: 5 * time.Minute,
		},
		Risk: Risk{
			BaseURL: os.Getenv("ALTA_RISK_URL"),
			Timeout: 5 * time.Second,
		},
		Kafka: Kafka{
			Brokers:      kafkaBrokers,
			AuditTopic:   auditTopic,
			PollInterval: 2 * time.Second,
		},
	}
}

func splitNonEmpty(csv string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(csv); i++ {
		if i == len(csv) || csv[i] == ',' {
			if part := csv[start:i]; part != "" {
				out = append(out, part)
			}
			start = i + 1
		}
	}
	return out
}
