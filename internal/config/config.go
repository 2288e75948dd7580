package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	APIKey      string

	FinnhubAPIKey string
	NewsCategory  string
	NewsFeeds     []string
	RedditSubs    []string

	NewsPollSecs      int
	NewsFeedItemLimit int
	FeedLimit         int
	RetentionDays     int

	SSHPort        int
	SSHHostKeyPath string

	MCPTransport string
}

func Load() *Config {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		APIKey:        strings.TrimSpace(os.Getenv("API_KEY")),
		FinnhubAPIKey: strings.TrimSpace(os.Getenv("FINNHUB_API_KEY")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}
	if cfg.FinnhubAPIKey == "" {
		log.Println("Warning: FINNHUB_API_KEY not set, market news provider will be disabled")
	}

	cfg.NewsCategory = strings.TrimSpace(os.Getenv("NEWS_CATEGORY"))
	if cfg.NewsCategory == "" {
		cfg.NewsCategory = "general"
	}

	cfg.NewsFeeds = splitList(os.Getenv("NEWS_FEEDS"))
	cfg.RedditSubs = splitList(os.Getenv("REDDIT_SUBS"))

	cfg.NewsPollSecs = 150
	if v := os.Getenv("NEWS_POLL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.NewsPollSecs = n
		}
	}

	cfg.NewsFeedItemLimit = 40
	if v := strings.TrimSpace(os.Getenv("NEWS_FEED_ITEM_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.NewsFeedItemLimit = n
		}
	}

	cfg.FeedLimit = 50
	if v := strings.TrimSpace(os.Getenv("FEED_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			cfg.FeedLimit = n
		}
	}

	cfg.RetentionDays = 7
	if v := strings.TrimSpace(os.Getenv("RETENTION_DAYS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RetentionDays = n
		}
	}

	cfg.SSHPort = 2222
	if v := strings.TrimSpace(os.Getenv("SSH_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < 65536 {
			cfg.SSHPort = n
		}
	}

	cfg.SSHHostKeyPath = strings.TrimSpace(os.Getenv("SSH_HOST_KEY_PATH"))
	if cfg.SSHHostKeyPath == "" {
		cfg.SSHHostKeyPath = ".ssh/headline_lens_ed25519"
	}

	cfg.MCPTransport = strings.ToLower(strings.TrimSpace(os.Getenv("MCP_TRANSPORT")))
	if cfg.MCPTransport == "" {
		cfg.MCPTransport = "stdio"
	}
	if cfg.MCPTransport != "stdio" {
		log.Printf("Warning: unsupported MCP_TRANSPORT=%q, defaulting to stdio", cfg.MCPTransport)
		cfg.MCPTransport = "stdio"
	}

	return cfg
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
