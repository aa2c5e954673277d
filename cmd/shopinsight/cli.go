package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
	siprom "github.com/fwojciec/shopinsight/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Metrics   *siprom.Metrics
	Extractor shopinsight.InsightExtractor
}

// CLI defines the command-line interface structure for Kong. Every setting
// can also come from the environment (or a .env file).
type CLI struct {
	OpenRouterAPIKey string `name:"openrouter-api-key" env:"OPEN_ROUTER_API_KEY" help:"OpenRouter API key"`
	GeminiAPIKey     string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Provider         string `enum:"openrouter,gemini" default:"openrouter" env:"SHOPINSIGHT_PROVIDER" help:"LLM provider (${enum})"`
	Model            string `env:"SHOPINSIGHT_MODEL" help:"Model identifier (provider default when empty)"`
	LLMURL           string `name:"llm-url" env:"SHOPINSIGHT_LLM_URL" help:"OpenRouter-compatible API base URL"`

	Timeout    time.Duration `default:"10s" env:"SHOPINSIGHT_TIMEOUT" help:"Per-page fetch timeout"`
	LLMTimeout time.Duration `name:"llm-timeout" default:"120s" env:"SHOPINSIGHT_LLM_TIMEOUT" help:"Per-call LLM timeout"`
	UserAgent  string        `name:"user-agent" env:"SHOPINSIGHT_USER_AGENT" help:"User-Agent header for page fetches"`

	Concurrency    int     `short:"c" default:"4" env:"SHOPINSIGHT_CONCURRENCY" help:"Concurrent candidate page fetches"`
	RPS            float64 `name:"rps" default:"0" env:"SHOPINSIGHT_RPS" help:"Per-host request rate for secondary pages (0 disables)"`
	MaxPolicyChars int     `default:"20000" env:"SHOPINSIGHT_MAX_POLICY_CHARS" help:"Character cap for policy text"`
	MinConfidence  int     `default:"0" env:"SHOPINSIGHT_MIN_CONFIDENCE" help:"Skip product endpoints scored below this (0-100)"`
	FAQs           bool    `name:"faqs" env:"SHOPINSIGHT_FAQS" help:"Discover and extract FAQs with the LLM"`
	Enrich         bool    `env:"SHOPINSIGHT_ENRICH" help:"Fill brand name, return/refund policies, about text and important links"`
	AboutExtractor string  `enum:"trafilatura,readability" default:"trafilatura" env:"SHOPINSIGHT_ABOUT_EXTRACTOR" help:"Content extractor for the about page (${enum})"`

	LogLevel string `enum:"debug,info,warn,error" default:"info" env:"SHOPINSIGHT_LOG_LEVEL" help:"Log level (${enum})"`
	LogJSON  bool   `name:"log-json" env:"SHOPINSIGHT_LOG_JSON" help:"Log as JSON"`

	Serve   ServeCmd   `cmd:"" help:"Serve the brand insights HTTP API"`
	Extract ExtractCmd `cmd:"" help:"Extract brand insights for one storefront and print JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string   `default:":8000" env:"SHOPINSIGHT_ADDR" help:"Listen address"`
	CORSOrigins []string `name:"cors-origins" env:"SHOPINSIGHT_CORS_ORIGINS" help:"Allowed CORS origins (all when empty)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Storefront URL"`
	OutDir string `name:"out-dir" env:"SHOPINSIGHT_OUT_DIR" help:"Write the report into this directory instead of stdout"`
}
