package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	SqliteFile string `toml:"sqlite_file"`
}

type Auth struct {
	Token          string `toml:"token"`
	Expiration     string `toml:"expiration"`
	PasswordPepper string `toml:"password_pepper"`
	RootPassword   string `toml:"root_password"`
}

type Hub struct {
	Shards            int    `toml:"shards"`
	OutboundBuffer    int    `toml:"outbound_buffer"`
	SendTimeout       string `toml:"send_timeout"`
	HeartbeatInterval string `toml:"heartbeat_interval"`
	HeartbeatTimeout  string `toml:"heartbeat_timeout"`
}

type Mail struct {
	Enabled    bool   `toml:"enabled"`
	PublicKey  string `toml:"public_key"`
	PrivateKey string `toml:"private_key"`
	Sender     string `toml:"sender"`
}

type Ops struct {
	Recipient        string `toml:"recipient"`
	TelegramEnabled  bool   `toml:"telegram_enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
	TelegramChatID   int64  `toml:"telegram_chat_id"`
}

type Scheduler struct {
	DigestSpec          string `toml:"digest_spec"`
	CleanupSpec         string `toml:"cleanup_spec"`
	ReengagementSpec    string `toml:"reengagement_spec"`
	DeliveryConcurrency int    `toml:"delivery_concurrency"`
	DeliveryTimeout     string `toml:"delivery_timeout"`
}

type Crypto struct {
	// Key must be 16, 24 or 32 bytes (AES-128/192/256).
	Key string `toml:"key"`
}

type Config struct {
	Server    Server    `toml:"server"`
	Auth      Auth      `toml:"auth"`
	Hub       Hub       `toml:"hub"`
	Mail      Mail      `toml:"mail"`
	Ops       Ops       `toml:"ops"`
	Scheduler Scheduler `toml:"scheduler"`
	Crypto    Crypto    `toml:"crypto"`
}

func New(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}

	// Secrets may be supplied by the environment instead of the file.
	if v := os.Getenv("AUTH_TOKEN_SECRET"); v != "" {
		cfg.Auth.Token = v
	}
	if v := os.Getenv("MAILJET_PUBLIC_KEY"); v != "" {
		cfg.Mail.PublicKey = v
	}
	if v := os.Getenv("MAILJET_PRIVATE_KEY"); v != "" {
		cfg.Mail.PrivateKey = v
	}
	if v := os.Getenv("TELEGRAM_APITOKEN"); v != "" {
		cfg.Ops.TelegramApiToken = v
	}
	if v := os.Getenv("PII_ENCRYPTION_KEY"); v != "" {
		cfg.Crypto.Key = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Hub.Shards == 0 {
		c.Hub.Shards = 16
	}
	if c.Hub.OutboundBuffer == 0 {
		c.Hub.OutboundBuffer = 32
	}
	if c.Hub.SendTimeout == "" {
		c.Hub.SendTimeout = "2s"
	}
	if c.Hub.HeartbeatInterval == "" {
		c.Hub.HeartbeatInterval = "30s"
	}
	if c.Hub.HeartbeatTimeout == "" {
		c.Hub.HeartbeatTimeout = "75s"
	}
	if c.Scheduler.DigestSpec == "" {
		c.Scheduler.DigestSpec = "@weekly"
	}
	if c.Scheduler.CleanupSpec == "" {
		c.Scheduler.CleanupSpec = "@daily"
	}
	if c.Scheduler.ReengagementSpec == "" {
		c.Scheduler.ReengagementSpec = "@weekly"
	}
	if c.Scheduler.DeliveryConcurrency == 0 {
		c.Scheduler.DeliveryConcurrency = 8
	}
	if c.Scheduler.DeliveryTimeout == "" {
		c.Scheduler.DeliveryTimeout = "10s"
	}
	if c.Auth.Expiration == "" {
		c.Auth.Expiration = "24h"
	}
	if c.Mail.Sender == "" {
		c.Mail.Sender = "no-reply@pitchside.app"
	}
}

// Duration parses one of the config's duration strings, falling back to
// def when the value is missing or malformed.
func Duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
