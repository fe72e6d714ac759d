// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8888)
  - DatabaseURL: connection string (required)
  - DatabaseType: postgres (default) or sqlite
  - AllowedOrigins: CORS allow-list (empty means any origin)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: json (default) or text
  - Bootstrap: create tables on startup

# Sources

Each setting is resolved in order, first match wins:

	CLI flag → environment variable → YAML config file → default

A .env file in the working directory is loaded into the environment first;
variables already set are not overwritten.

	-c            CONFIG_FILE
	-p            PORT
	-d            DATABASE_URL
	-t            DATABASE_TYPE
	--origins     ALLOWED_ORIGINS (comma-separated)
	--log-level   LOG_LEVEL
	--log-format  LOG_FORMAT
	--bootstrap   BOOTSTRAP_SCHEMA

The config file uses the yaml tags on Config:

	port: 8888
	database_url: postgres://lookup@localhost/lookup
	allowed_origins:
	  - https://www.example-burners.com
*/
package cliparse
