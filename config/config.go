package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"promptpilot/generator"
)

// EnvPrefix namespaces every environment override, e.g. PROMPTPILOT_LLM_PROVIDER.
const EnvPrefix = "PROMPTPILOT"

var ErrInvalid = errors.New("invalid config")

// Duration reads "1.5s" style strings from JSON and the environment.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n int64
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("duration: %s", b)
		}
		*d = Duration(n)
		return nil
	}
	return d.Decode(s)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Decode implements envconfig.Decoder.
func (d *Duration) Decode(value string) error {
	v, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

type Config struct {
	ServerAddr         string      `json:"server_addr,omitempty" envconfig:"SERVER_ADDR"`
	Log                LogConfig   `json:"log" envconfig:"LOG"`
	GenerationDelay    Duration    `json:"generation_delay,omitempty" envconfig:"GENERATION_DELAY"`
	MaxPromptLength    int         `json:"max_prompt_length,omitempty" envconfig:"MAX_PROMPT_LENGTH"`
	ExportDir          string      `json:"export_dir,omitempty" envconfig:"EXPORT_DIR"`
	Share              ShareConfig `json:"share" envconfig:"SHARE"`
	CORSAllowedOrigins []string    `json:"cors_allowed_origins,omitempty" envconfig:"CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout    Duration    `json:"shutdown_timeout,omitempty" envconfig:"SHUTDOWN_TIMEOUT"`
	LLM                LLMConfig   `json:"llm" envconfig:"LLM"`
}

type LogConfig struct {
	Level    string `json:"level,omitempty" envconfig:"LEVEL"`
	Encoding string `json:"encoding,omitempty" envconfig:"ENCODING"`
}

type ShareConfig struct {
	// WebhookURL is the native share surface. Empty means clipboard only.
	WebhookURL string `json:"webhook_url,omitempty" envconfig:"WEBHOOK_URL"`
	BaseURL    string `json:"base_url,omitempty" envconfig:"BASE_URL"`
}

// LLMConfig selects the completer. "mock" renders the built-in templates
// after GenerationDelay.
type LLMConfig struct {
	Provider string   `json:"provider,omitempty" envconfig:"PROVIDER"`
	Model    string   `json:"model,omitempty" envconfig:"MODEL"`
	APIKey   string   `json:"api_key,omitempty" envconfig:"API_KEY"`
	BaseURL  string   `json:"base_url,omitempty" envconfig:"BASE_URL"`
	Timeout  Duration `json:"timeout,omitempty" envconfig:"TIMEOUT"`
}

func Default() Config {
	return Config{
		ServerAddr:         ":8080",
		Log:                LogConfig{Level: "info", Encoding: "json"},
		GenerationDelay:    Duration(generator.DefaultDelay),
		MaxPromptLength:    generator.DefaultMaxPromptLength,
		ExportDir:          "exports",
		Share:              ShareConfig{BaseURL: "http://localhost:8080"},
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		ShutdownTimeout:    Duration(10 * time.Second),
		LLM:                LLMConfig{Provider: "mock", Timeout: Duration(generator.DefaultLLMTimeout)},
	}
}

// Load layers defaults, the JSON file at path (skipped when path is empty
// or missing), a .env file and PROMPTPILOT_* variables, then validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, err
		}
	}

	_ = godotenv.Load()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxPromptLength <= 0 {
		return fmt.Errorf("%w: max_prompt_length must be positive", ErrInvalid)
	}
	if c.GenerationDelay < 0 {
		return fmt.Errorf("%w: generation_delay must not be negative", ErrInvalid)
	}
	switch c.LLM.Provider {
	case "mock", "ollama":
	case "openai", "deepseek":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("%w: llm provider %s requires api_key", ErrInvalid, c.LLM.Provider)
		}
		// DeepSeek speaks the OpenAI wire format behind its own endpoint.
		if c.LLM.Provider == "deepseek" && c.LLM.BaseURL == "" {
			return fmt.Errorf("%w: llm provider deepseek requires base_url", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: llm provider %q not supported", ErrInvalid, c.LLM.Provider)
	}
	return nil
}
