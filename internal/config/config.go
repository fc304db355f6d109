package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

const (
	LLMBackendMock   = "mock"
	LLMBackendOpenAI = "openai"
	LLMBackendVertex = "vertex"
)

const (
	KnowledgeDefault   = "default"
	KnowledgeFile      = "file"
	KnowledgeFirestore = "firestore"
)

type Config struct {
	Port string

	LLMBackend string // "mock", "openai" or "vertex"

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	GCPProjectID string
	GCPLocation  string
	VertexModel  string

	SessionTimeout time.Duration
	SweepInterval  time.Duration
	LLMTimeout     time.Duration

	KnowledgeSource string // "default", "file" or "firestore"
	KnowledgeFile   string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getSecondsEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return def
	}
	return time.Duration(secs) * time.Second
}

// Load reads all env vars and builds the config
func Load() *Config {
	cfg := &Config{
		Port: getEnv("LONGEVITY_PORT", "8000"),

		LLMBackend: getEnv("LONGEVITY_LLM_BACKEND", LLMBackendMock),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("LONGEVITY_OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("LONGEVITY_OPENAI_MODEL", "gpt-4o"),

		GCPProjectID: getEnv("LONGEVITY_GCP_PROJECT", ""),
		GCPLocation:  getEnv("LONGEVITY_GCP_LOCATION", "us-central1"),
		VertexModel:  getEnv("LONGEVITY_VERTEX_MODEL", "gemini-2.5-flash"),

		SessionTimeout: getSecondsEnv("LONGEVITY_SESSION_TIMEOUT", time.Hour),
		SweepInterval:  getSecondsEnv("LONGEVITY_SWEEP_INTERVAL", 5*time.Minute),
		LLMTimeout:     getSecondsEnv("LONGEVITY_LLM_TIMEOUT", 60*time.Second),

		KnowledgeSource: getEnv("LONGEVITY_KNOWLEDGE_SOURCE", KnowledgeDefault),
		KnowledgeFile:   getEnv("LONGEVITY_KNOWLEDGE_FILE", ""),
	}

	// Minimal validation for backends that need credentials at startup.
	if cfg.LLMBackend == LLMBackendVertex && cfg.GCPProjectID == "" {
		log.Fatal("LONGEVITY_GCP_PROJECT must be set for the vertex backend")
	}
	if cfg.KnowledgeSource == KnowledgeFirestore && cfg.GCPProjectID == "" {
		log.Fatal("LONGEVITY_GCP_PROJECT must be set for the firestore knowledge source")
	}
	if cfg.KnowledgeSource == KnowledgeFile && cfg.KnowledgeFile == "" {
		log.Fatal("LONGEVITY_KNOWLEDGE_FILE must be set for the file knowledge source")
	}

	return cfg
}
