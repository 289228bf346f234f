// Package config defines the server configuration structure.
package config

// Default configuration values.
const (
	DefaultHTTPAddr  = "127.0.0.1:5190"
	DefaultRateLimit = 100

	DefaultStorageFile = "/var/lib/rolodex-server/rolodex.json"

	DefaultMatchKey  = "full_name"
	DefaultMatchCase = "sensitive"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:      DefaultHTTPAddr,
				RateLimit: DefaultRateLimit,
			},
		},
		Storage: StorageSection{
			File: DefaultStorageFile,
		},
		API: APISection{
			MatchKey:  DefaultMatchKey,
			MatchCase: DefaultMatchCase,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
