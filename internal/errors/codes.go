package errors

// ErrorCode represents a unique identifier for each error type
type ErrorCode string

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrParseFlags      ErrorCode = "parse_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrUnmarshalConfig ErrorCode = "unmarshal_config_failed"
	ErrInvalidInterval ErrorCode = "invalid_interval"
	ErrInvalidTheme    ErrorCode = "invalid_theme"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"
	ErrOpenLogFile     ErrorCode = "open_log_file_failed"

	// Dashboard errors
	ErrInvalidSelector ErrorCode = "invalid_selector"
	ErrInvalidBaseline ErrorCode = "invalid_baseline"
	ErrRefresh         ErrorCode = "refresh_failed"
	ErrRunUI           ErrorCode = "run_ui_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:        "Internal error occurred",
	ErrInvalidArgument: "Invalid argument provided",
	ErrInvalidConfig:   "Invalid configuration",
	ErrBindFlags:       "Failed to bind flags",
	ErrParseFlags:      "Failed to parse flags",
	ErrReadConfig:      "Failed to read config file",
	ErrUnmarshalConfig: "Failed to unmarshal configuration",
	ErrInvalidInterval: "Invalid interval value",
	ErrInvalidTheme:    "Invalid theme",
	ErrInvalidLogLevel: "Invalid log level",
	ErrOpenLogFile:     "Failed to open log file",
	ErrInvalidSelector: "Invalid range selector",
	ErrInvalidBaseline: "Invalid baseline curve",
	ErrRefresh:         "Failed to refresh dashboard",
	ErrRunUI:           "Failed to run dashboard UI",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
