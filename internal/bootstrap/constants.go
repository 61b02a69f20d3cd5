package bootstrap

import "time"

// Log file rotation
const (
	DirPermission = 0o755

	LogFileName       = "textrealm.log"
	LogFileMaxSizeMB  = 50
	LogFileMaxBackups = 9
	LogFileMaxAgeDays = 28
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingServer      = "Starting TextRealm"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
)

// Storage
const (
	LogMsgStoreOpened     = "Store opened"
	LogMsgMigrationsSkip  = "Skipping migrations"
	ErrMsgUnknownDriver   = "unknown database driver"
	ErrMsgFailedOpenStore = "failed to open store"
	ErrMsgFailedMigrate   = "failed to run migrations"

	DBMaxIdleTime = 5 * time.Minute
	DBMaxLifetime = time.Hour
)

// Game content
const (
	LogMsgCatalogLoaded      = "Catalog loaded"
	ErrMsgFailedLoadCatalog  = "failed to load catalog"
	ErrMsgFailedLoadTimezone = "failed to load game timezone"
)

// Event system
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgGameEvent                  = "Game event"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgTracerShutdownFailed = "Tracer shutdown failed"
	LogMsgStoreCloseFailed     = "Store close failed"
)
