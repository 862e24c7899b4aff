package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Data directories
	DataDir    string `long:"data-dir" env:"DATA_DIR" default:"./data" description:"Directory for persisted snapshots"`
	ReportsDir string `long:"reports-dir" env:"REPORTS_DIR" default:"./data/reports" description:"Directory for generated reports"`

	// Discovery API credentials
	NewsAPIKey   string `long:"news-api-key" env:"NEWS_API_KEY" description:"News search API key (news source disabled when empty)"`
	GoogleAPIKey string `long:"google-api-key" env:"GOOGLE_API_KEY" description:"Google API key for Custom Search"`
	GoogleCSEID  string `long:"google-cse-id" env:"GOOGLE_CSE_ID" description:"Google Custom Search engine ID"`

	// Collection settings
	DaysBack        int    `long:"days-back" env:"DAYS_TO_LOOK_BACK" default:"7" description:"Number of days to look back for funding news"`
	SourcesFile     string `long:"sources-file" env:"SOURCES_FILE" default:"./sources.yml" description:"Optional YAML file tuning search phrases and scraper feeds"`
	ScrapersEnabled bool   `long:"enable-scrapers" env:"SCRAPERS_ENABLED" description:"Enable supplemental RSS scraper source"`

	// LLM settings
	LLMProvider  string `long:"llm-provider" env:"LLM_PROVIDER" default:"groq" description:"LLM provider for startup analysis (groq or openai)"`
	GroqAPIKey   string `long:"groq-api-key" env:"GROQ_API_KEY" description:"Groq API key"`
	GroqModel    string `long:"groq-model" env:"GROQ_MODEL" default:"deepseek-r1-distill-llama-70b" description:"Groq model name"`
	OpenAIAPIKey string `long:"openai-api-key" env:"OPENAI_API_KEY" description:"OpenAI API key"`
	OpenAIModel  string `long:"openai-model" env:"DEFAULT_LLM_MODEL" default:"gpt-3.5-turbo" description:"OpenAI model name"`

	// Email settings
	EmailEnabled   bool   `long:"email-enabled" env:"EMAIL_ENABLED" description:"Enable report delivery via email"`
	EmailSender    string `long:"email-sender" env:"EMAIL_SENDER" description:"Sender address for report emails"`
	EmailPassword  string `long:"email-password" env:"EMAIL_PASSWORD" description:"SMTP password for the sender account"`
	EmailRecipient string `long:"email-recipient" env:"EMAIL_RECIPIENT" description:"Recipient address for report emails"`
	SMTPServer     string `long:"smtp-server" env:"SMTP_SERVER" default:"smtp.gmail.com" description:"SMTP server host"`
	SMTPPort       int    `long:"smtp-port" env:"SMTP_PORT" default:"587" description:"SMTP server port"`

	// Application configuration
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey    string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`
	WorkerCount     int    `long:"worker-count" env:"WORKER_COUNT" default:"2" description:"Number of background workers for pipeline tasks"`
	ReportFrequency string `long:"report-frequency" env:"REPORT_FREQUENCY" default:"daily" description:"Pipeline cadence (daily or weekly)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Venture Watch/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DataDir:         raw.DataDir,
		ReportsDir:      raw.ReportsDir,
		NewsAPIKey:      raw.NewsAPIKey,
		GoogleAPIKey:    raw.GoogleAPIKey,
		GoogleCSEID:     raw.GoogleCSEID,
		DaysBack:        raw.DaysBack,
		SourcesFile:     raw.SourcesFile,
		ScrapersEnabled: raw.ScrapersEnabled,
		LLMProvider:     raw.LLMProvider,
		GroqAPIKey:      raw.GroqAPIKey,
		GroqModel:       raw.GroqModel,
		OpenAIAPIKey:    raw.OpenAIAPIKey,
		OpenAIModel:     raw.OpenAIModel,
		EmailEnabled:    raw.EmailEnabled,
		EmailSender:     raw.EmailSender,
		EmailPassword:   raw.EmailPassword,
		EmailRecipient:  raw.EmailRecipient,
		SMTPServer:      raw.SMTPServer,
		SMTPPort:        raw.SMTPPort,
		Port:            raw.Port,
		APIAccessKey:    raw.APIAccessKey,
		WorkerCount:     raw.WorkerCount,
		ReportFrequency: raw.ReportFrequency,
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if cfg.ReportFrequency != "daily" && cfg.ReportFrequency != "weekly" {
		return nil, fmt.Errorf("invalid report frequency: %s (valid: daily, weekly)", cfg.ReportFrequency)
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
