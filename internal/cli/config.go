package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	SessionID   string
	SessionFile string
	Output      string
	NoColor     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("BBINGO_SERVER", "http://localhost:8080"),
		SessionID:   os.Getenv("BBINGO_SESSION"),
		SessionFile: getEnvOrDefault("BBINGO_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		NoColor:     os.Getenv("NO_COLOR") != "",
	}
}

// LoadSessionID loads the remembered session ID from file if not already set
func (c *Config) LoadSessionID() error {
	if c.SessionID != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session file is fine
		}
		return err
	}

	c.SessionID = strings.TrimSpace(string(data))
	return nil
}

// SaveSessionID remembers the session ID for subsequent invocations
func (c *Config) SaveSessionID(id string) error {
	c.SessionID = id

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(id), 0600)
}

// ClearSessionID forgets the remembered session ID
func (c *Config) ClearSessionID() error {
	c.SessionID = ""
	err := os.Remove(c.SessionFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bbingo/session"
	}
	return filepath.Join(home, ".bbingo", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
