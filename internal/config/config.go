package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// Config holds the application configuration
type Config struct {
	BackendURL string `json:"backend_url"`        // Base URL of the workspace backend
	AnonKey    string `json:"anon_key,omitempty"` // API key sent with every backend request

	UserID     string `json:"user_id"`               // Authenticated user's profile id
	UserName   string `json:"user_name"`             // Display name shown on sent messages
	UserAvatar string `json:"user_avatar,omitempty"` // Avatar glyph/initials for the header

	WorkspaceName string `json:"workspace_name,omitempty"` // Workspace title shown in the header

	WelcomeShown         bool   `json:"welcome_shown,omitempty"`         // Whether welcome modal has been shown
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications for background inserts

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".huddle"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Used by tests and the
// --config flag.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		WorkspaceName: "Huddle",
		filePath:      path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.WorkspaceName == "" {
		cfg.WorkspaceName = "Huddle"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config is internally consistent.
// This is a read-only operation.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.BackendURL != "" {
		u, err := url.Parse(c.BackendURL)
		if err != nil {
			return fmt.Errorf("invalid backend_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("backend_url must be http or https, got %q", c.BackendURL)
		}
	}

	if c.UserID == "" && c.UserName != "" {
		return fmt.Errorf("user_name is set but user_id is empty")
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// GetBackendURL returns the backend base URL
func (c *Config) GetBackendURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BackendURL
}

// SetBackendURL sets the backend base URL
func (c *Config) SetBackendURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BackendURL = url
}

// GetAnonKey returns the backend API key
func (c *Config) GetAnonKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AnonKey
}

// GetUser returns the authenticated user's id, display name, and avatar
func (c *Config) GetUser() (id, name, avatar string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.UserID, c.UserName, c.UserAvatar
}

// SetUser sets the authenticated user's identity
func (c *Config) SetUser(id, name, avatar string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.UserID = id
	c.UserName = name
	c.UserAvatar = avatar
}

// GetWorkspaceName returns the workspace title for the header
func (c *Config) GetWorkspaceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WorkspaceName
}

// HasSeenWelcome returns whether the welcome modal has been shown
func (c *Config) HasSeenWelcome() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// MarkWelcomeShown marks the welcome modal as shown
func (c *Config) MarkWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
