package cmd

import (
	"context"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sandren/mailout/transport"
	"github.com/sandren/mailout/transport/mboxfile"
	"github.com/sandren/mailout/transport/ses"
)

// Config selects and configures the delivery transport used by the send
// command.
type Config struct {
	// Transport is one of "writer", "smtp", "ses", or "mbox". It defaults
	// to "writer", which prints deliveries to stdout.
	Transport string `yaml:"transport"`

	SMTP SMTPConfig `yaml:"smtp"`
	SES  SESConfig  `yaml:"ses"`
	Mbox MboxConfig `yaml:"mbox"`
}

// SMTPConfig holds submission-agent settings for the smtp transport.
type SMTPConfig struct {
	Addr     string `yaml:"addr"`
	Sender   string `yaml:"sender"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// SESConfig holds AWS SES v2 settings for the ses transport.
type SESConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Sender          string `yaml:"sender"`
}

// MboxConfig holds settings for the mbox capture transport.
type MboxConfig struct {
	Path string `yaml:"path"`
	From string `yaml:"from"`
}

// loadConfig reads the YAML configuration at path. An empty path yields
// the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{Transport: "writer"}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Transport == "" {
		cfg.Transport = "writer"
	}

	return cfg, nil
}

// buildTransport constructs the transport named by the configuration.
func (c *Config) buildTransport(ctx context.Context) (transport.Transport, error) {
	switch c.Transport {
	case "writer":
		return transport.NewWriter(), nil
	case "smtp":
		t := transport.NewSMTP(c.SMTP.Addr, c.SMTP.Sender)
		if c.SMTP.Username != "" {
			host := c.SMTP.Addr
			if i := strings.IndexByte(host, ':'); i >= 0 {
				host = host[:i]
			}
			t.Auth = smtp.PlainAuth("", c.SMTP.Username, c.SMTP.Password, host)
		}
		return t, nil
	case "ses":
		return ses.New(ctx, ses.Config{
			Region:          c.SES.Region,
			AccessKeyID:     c.SES.AccessKeyID,
			SecretAccessKey: c.SES.SecretAccessKey,
			Sender:          c.SES.Sender,
		})
	case "mbox":
		return mboxfile.New(c.Mbox.Path, c.Mbox.From), nil
	}
	return nil, fmt.Errorf("unknown transport %q", c.Transport)
}
