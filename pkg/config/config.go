// Package config holds application configuration loaded from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Queue     *QueueConfig
	Review    *ReviewConfig
	LLM       *LLMConfig
	Retrieval *RetrievalConfig
	Pages     *PagesConfig
	Server    *ServerConfig
}

// ReviewConfig controls the review pipeline behavior.
type ReviewConfig struct {
	// FeedbackTimeout is how long a stage waits at a feedback checkpoint
	// before treating the checkpoint as skipped.
	FeedbackTimeout time.Duration

	// MaxHITLRetries bounds how many times a single stage re-runs with
	// user feedback. The stage executes at most MaxHITLRetries+1 times.
	MaxHITLRetries int

	// BPCaseCount is how many similar cases retrieval returns per query.
	BPCaseCount int
}

// LLMConfig holds the model gateway settings.
type LLMConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	RequestTimeout time.Duration
}

// RetrievalConfig holds the similar-case search service settings.
type RetrievalConfig struct {
	BaseURL        string // empty disables retrieval, built-in sample cases are used
	Method         string // rrf, bm25, knn or cc
	RequestTimeout time.Duration
}

// PagesConfig holds the wiki page source settings.
type PagesConfig struct {
	BaseURL        string
	Token          string
	MaxDepth       int
	RequestTimeout time.Duration
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr string
}

// Load builds the full configuration from environment variables,
// applying defaults for anything unset.
func Load() (*Config, error) {
	review, err := loadReviewConfig()
	if err != nil {
		return nil, err
	}

	queue := DefaultQueueConfig()
	if v := os.Getenv("QUEUE_WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid QUEUE_WORKER_COUNT: %q", v)
		}
		queue.WorkerCount = n
		queue.MaxConcurrentJobs = n
	}

	return &Config{
		Queue:  queue,
		Review: review,
		LLM: &LLMConfig{
			BaseURL:        getEnvOrDefault("LLM_BASE_URL", "http://localhost:8001/v1"),
			APIKey:         os.Getenv("LLM_API_KEY"),
			Model:          getEnvOrDefault("LLM_MODEL", "gpt-4o"),
			RequestTimeout: getDurationOrDefault("LLM_REQUEST_TIMEOUT", 120*time.Second),
		},
		Retrieval: &RetrievalConfig{
			BaseURL:        os.Getenv("RETRIEVAL_BASE_URL"),
			Method:         getEnvOrDefault("RETRIEVAL_METHOD", "rrf"),
			RequestTimeout: getDurationOrDefault("RETRIEVAL_REQUEST_TIMEOUT", 30*time.Second),
		},
		Pages: &PagesConfig{
			BaseURL:        os.Getenv("WIKI_BASE_URL"),
			Token:          os.Getenv("WIKI_TOKEN"),
			MaxDepth:       5,
			RequestTimeout: getDurationOrDefault("WIKI_REQUEST_TIMEOUT", 30*time.Second),
		},
		Server: &ServerConfig{
			Addr: getEnvOrDefault("SERVER_ADDR", ":8080"),
		},
	}, nil
}

func loadReviewConfig() (*ReviewConfig, error) {
	cfg := &ReviewConfig{
		FeedbackTimeout: getDurationOrDefault("FEEDBACK_TIMEOUT", 30*time.Minute),
		MaxHITLRetries:  3,
		BPCaseCount:     5,
	}

	if v := os.Getenv("MAX_HITL_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid MAX_HITL_RETRIES: %q", v)
		}
		cfg.MaxHITLRetries = n
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
