// Package config defines the server configuration structure.
package config

// ServerConfig is the root configuration for rolodex-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Storage StorageSection `koanf:"storage"`
	API     APISection     `koanf:"api"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`

	// RateLimit is the per-IP request rate (requests/second).
	// Zero disables rate limiting.
	RateLimit int `koanf:"rate_limit"`

	// CORSAllowedOrigins is the list of allowed CORS origins
	// (empty = allow all).
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// StorageSection configures the snapshot file.
type StorageSection struct {
	// File is the path of the backing JSON file.
	File string `koanf:"file"`

	// Watch reloads the in-memory state when the file is replaced
	// by an external editor.
	Watch bool `koanf:"watch"`
}

// APISection configures contact matching behavior.
type APISection struct {
	// MatchKey selects the contact lookup key: "first_name" or
	// "full_name".
	MatchKey string `koanf:"match_key"`

	// MatchCase selects name-key comparison: "sensitive" or
	// "insensitive".
	MatchCase string `koanf:"match_case"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
