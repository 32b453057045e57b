package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/avrctl/internal/driver"
)

type serviceConfig struct {
	Driver          driver.Config
	AdminListenAddr string
	CorsOrigins     []string
}

type fileConfig struct {
	Name              string   `toml:"name"`
	ReceiverHost      string   `toml:"receiver_host"`
	ReceiverPort      int      `toml:"receiver_port"`
	ReconnectInterval string   `toml:"reconnect_interval"`
	DialTimeout       string   `toml:"dial_timeout"`
	WriteTimeout      string   `toml:"write_timeout"`
	AdminListenAddr   string   `toml:"admin_listen_addr"`
	CorsOrigins       []string `toml:"cors_origins"`
}

func loadServiceConfig(path string) (serviceConfig, error) {
	cfg := serviceConfig{Driver: driver.DefaultConfig()}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return serviceConfig{}, fmt.Errorf("load avrctl config: %w", err)
	}

	if meta.IsDefined("name") {
		name := strings.TrimSpace(raw.Name)
		if name != "" {
			cfg.Driver.Name = name
		}
	}

	cfg.Driver.Host = strings.TrimSpace(raw.ReceiverHost)

	if meta.IsDefined("receiver_port") {
		cfg.Driver.Port = raw.ReceiverPort
	}

	if meta.IsDefined("reconnect_interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReconnectInterval))
		if err != nil {
			return serviceConfig{}, fmt.Errorf("parse reconnect_interval: %w", err)
		}
		cfg.Driver.Retry.Interval = d
	}

	if meta.IsDefined("dial_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.DialTimeout))
		if err != nil {
			return serviceConfig{}, fmt.Errorf("parse dial_timeout: %w", err)
		}
		cfg.Driver.Transport.DialTimeout = d
	}

	if meta.IsDefined("write_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.WriteTimeout))
		if err != nil {
			return serviceConfig{}, fmt.Errorf("parse write_timeout: %w", err)
		}
		cfg.Driver.Transport.WriteTimeout = d
	}

	if meta.IsDefined("admin_listen_addr") {
		cfg.AdminListenAddr = strings.TrimSpace(raw.AdminListenAddr)
	}

	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}

	return cfg, nil
}

func normalizeOrigins(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
