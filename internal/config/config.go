// Package config loads the site-wide service configuration the shell
// renders from. The layout mirrors the original deployment config:
// navigation entries, the admin identity, and the service block.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ecogwiki.org/ecogwiki-web/internal/layout"
	"ecogwiki.org/ecogwiki-web/internal/nav"
)

// Config is the full deployment configuration.
type Config struct {
	Navigation []nav.Entry `yaml:"navigation"`
	Admin      Admin       `yaml:"admin"`
	Service    Service     `yaml:"service"`
}

// Admin identifies the single configured administrator.
type Admin struct {
	Email string `yaml:"email"`
}

// Service holds the public identity of the site.
type Service struct {
	Title       string   `yaml:"title"`
	Domain      string   `yaml:"domain"`
	GAProfileID string   `yaml:"ga_profile_id"`
	CSSList     []string `yaml:"css_list"`
}

// Default returns the built-in configuration used when no file is
// supplied.
func Default() Config {
	return Config{
		Navigation: []nav.Entry{
			{Name: "Home", URL: "/Home"},
			{Name: "Changes", URL: "/sp.changes", ShortcutKey: "C"},
		},
		Service: Service{
			CSSList: []string{"/statics/css/base.css"},
		},
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Layout adapts the configuration into the service block the
// composition engine consumes.
func (c Config) Layout() layout.ServiceConfig {
	return layout.ServiceConfig{
		Title:              c.Service.Title,
		Domain:             c.Service.Domain,
		AnalyticsAccountID: c.Service.GAProfileID,
		AdminEmail:         c.Admin.Email,
		CSSList:            c.Service.CSSList,
		Navigation:         c.Navigation,
	}
}
