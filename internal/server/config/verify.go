// Package config defines the server configuration structure.
package config

import (
	"errors"
	"os"
	"path/filepath"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyStorage(&cfg.Storage); err != nil {
		return err
	}
	return verifyAPI(&cfg.API)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if (cfg.HTTP.TLSCertFile == "") != (cfg.HTTP.TLSKeyFile == "") {
		return errors.New("server.http.tls_cert_file and tls_key_file must be set together")
	}
	if cfg.HTTP.RateLimit < 0 {
		return errors.New("server.http.rate_limit must not be negative")
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	if cfg.File == "" {
		return errors.New("storage.file is required")
	}

	// Check the data directory exists or can be created.
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0750); err != nil {
		return errors.New("cannot create data directory: " + err.Error())
	}
	return nil
}

func verifyAPI(cfg *APISection) error {
	switch cfg.MatchKey {
	case "first_name", "full_name":
	default:
		return errors.New(`api.match_key must be "first_name" or "full_name"`)
	}
	switch cfg.MatchCase {
	case "sensitive", "insensitive":
	default:
		return errors.New(`api.match_case must be "sensitive" or "insensitive"`)
	}
	return nil
}
