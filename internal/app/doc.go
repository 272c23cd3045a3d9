// Package app wires the publication summary service together and manages
// its lifecycle.
//
// # Initialization Flow
//
//  1. Resolve the upload and output directories from configuration
//  2. Initialize OpenTelemetry providers and business metrics
//  3. Create the file manager, table loader, validators and services
//  4. Build the chi router with middleware and handlers
//  5. Create the HTTP server
//
// # Usage
//
//	cfg, err := config.Load()
//	logger, closeLog, err := infrastructure.NewLogger(cfg.Logging)
//	app, err := app.NewApplication(cfg, logger)
//	if err := app.Run(ctx); err != nil {
//	    ...
//	}
//
// # Graceful Shutdown
//
// Run stops on SIGINT or SIGTERM: in-flight requests are drained within the
// configured shutdown timeout and telemetry providers are flushed.
package app
