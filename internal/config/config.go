package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultTimelineCompression divides raw model week estimates before they are
// shown to the user. The upstream estimates skew toward multi-month plans;
// factor 1 keeps the raw output.
const DefaultTimelineCompression = 4

type Config struct {
	Port string
	Env  string
	LLM  LLMConfig

	// TimelineCompression is applied by the timeline calibrator.
	TimelineCompression int
}

type LLMConfig struct {
	Provider     string // groq | gemini | fake
	GroqAPIKey   string
	GroqModel    string
	GeminiAPIKey string
	GeminiModel  string
	RPS          float64
	Burst        int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:                *port,
		Env:                 env,
		LLM:                 loadLLMConfig(),
		TimelineCompression: loadTimelineCompression(),
	}, nil
}

func loadLLMConfig() LLMConfig {
	groqKey := strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	geminiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))

	provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	if provider == "" {
		// Default to whichever credential is present; Groq wins when both are.
		switch {
		case groqKey != "":
			provider = "groq"
		case geminiKey != "":
			provider = "gemini"
		default:
			provider = "groq"
		}
	}

	var rps float64
	if v := strings.TrimSpace(os.Getenv("LLM_RPS")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rps = f
		}
	}
	var burst int
	if v := strings.TrimSpace(os.Getenv("LLM_BURST")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			burst = n
		}
	}

	return LLMConfig{
		Provider:     provider,
		GroqAPIKey:   groqKey,
		GroqModel:    firstNonEmpty(strings.TrimSpace(os.Getenv("GROQ_MODEL")), "llama3-70b-8192"),
		GeminiAPIKey: geminiKey,
		GeminiModel:  firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.5-flash"),
		RPS:          rps,
		Burst:        burst,
	}
}

func loadTimelineCompression() int {
	raw := strings.TrimSpace(os.Getenv("TIMELINE_COMPRESSION"))
	if raw == "" {
		return DefaultTimelineCompression
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return DefaultTimelineCompression
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
