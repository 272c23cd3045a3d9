// Package config loads the service configuration.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//  1. Environment variables (highest priority)
//  2. YAML configuration file
//  3. Default values (lowest priority)
//
// The YAML file is named by PUBSUM_CONFIG_FILE or found at config.yaml /
// configs/config.yaml. All environment variables are namespaced PUBSUM_*:
//
//	PUBSUM_SERVER_PORT=8080
//	PUBSUM_PATHS_UPLOAD_DIR=uploads
//	PUBSUM_PATHS_OUTPUT_DIR=output
//	PUBSUM_REPORT_SUMMARY_FORMAT=docx      # or markdown
//	PUBSUM_REPORT_EXPORT_FORMAT=xlsx       # or csv
//	PUBSUM_LOGGING_LEVEL=info
//
// # Paths
//
// Upload and output directories are resolved once into a Paths value at
// startup and passed explicitly to the file manager and services.
package config
