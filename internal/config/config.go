// Package config reads and writes the on-disk ThreatKB API credentials.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	credentialsDir  = ".threatkb"
	credentialsFile = "credentials"
	section         = "default"
)

// ErrNotConfigured indicates the credentials file is missing or unreadable.
var ErrNotConfigured = errors.New("no stored credentials, run 'threatkb configure' first")

// Credentials are the three values every API call needs. APIHost keeps
// whatever scheme prefix the user entered; Load normalizes it to end with a
// trailing slash.
type Credentials struct {
	Token     string
	SecretKey string
	APIHost   string
}

// UseHTTPS reports the scheme derived from the stored host: https unless the
// host was written with an explicit http:// prefix.
func (c *Credentials) UseHTTPS() bool {
	return !strings.HasPrefix(strings.ToLower(c.APIHost), "http://")
}

// DefaultPath returns the fixed per-user credentials location,
// ~/.threatkb/credentials.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, credentialsDir, credentialsFile), nil
}

// Load reads credentials from path. A missing or malformed file yields an
// error wrapping ErrNotConfigured.
func Load(path string) (*Credentials, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrNotConfigured, err)
	}

	sec := f.Section(section)
	creds := &Credentials{
		Token:     sec.Key("token").String(),
		SecretKey: sec.Key("secret_key").String(),
		APIHost:   sec.Key("api_host").String(),
	}
	if creds.Token == "" || creds.SecretKey == "" || creds.APIHost == "" {
		return nil, fmt.Errorf("%w (missing token, secret_key or api_host)", ErrNotConfigured)
	}

	if !strings.HasSuffix(creds.APIHost, "/") {
		creds.APIHost += "/"
	}
	return creds, nil
}

// Save writes credentials to path, creating the parent directory when absent
// and restricting the file to owner read/write.
func Save(path string, creds *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}

	f := ini.Empty()
	sec := f.Section(section)
	sec.Key("token").SetValue(creds.Token)
	sec.Key("secret_key").SetValue(creds.SecretKey)
	sec.Key("api_host").SetValue(creds.APIHost)

	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("restricting credentials permissions: %w", err)
	}
	return nil
}
