// Package config loads runtime configuration for the foldervault client.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (YAML, JSON or TOML, chosen by extension).
//  3. Environment variables prefixed FOLDERVAULT_, e.g. FOLDERVAULT_LOCALE.
//  4. Command-line flags registered with RegisterFlags, when set.
//
// Keys
//
//	server_endpoint_addr  address:port of the sync service
//	database_path         SQLite file holding the local vault
//	locale                BCP 47 tag used for ordering and translations
//	log_level             debug, info, warn or error
//	decrypt_workers       concurrent folder decryptions, 0 = GOMAXPROCS
//	request_timeout       deadline for each call to the sync service
//	online_check_interval how often the sync service is probed
//	access_token          access token issued by the sync service
//	refresh_token         refresh token issued by the sync service
package config
