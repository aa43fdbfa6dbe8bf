// Package config loads runtime configuration for the back office console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables (BACKOFFICE_* prefix).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-s string   base URL of the backend admin API
//	-t int      request timeout (seconds)
//	-d string   path to the session database file
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080/api/v1/admin",
//	  "request_timeout": "30s",
//	  "login_timeout": "10s",
//	  "session_db_path": "backoffice.db",
//	  "log_level": "info"
//	}
//
// Environment variables
//
//	BACKOFFICE_SERVER_URL       base URL of the backend admin API
//	BACKOFFICE_REQUEST_TIMEOUT  request timeout, Go duration syntax
//	BACKOFFICE_LOGIN_TIMEOUT    sign-in timeout, Go duration syntax
//	BACKOFFICE_SESSION_DB       path to the session database file
//	BACKOFFICE_LOG_LEVEL        debug, info, warn or error
package config
