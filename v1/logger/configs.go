package logger

// Log levels accepted in Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level that gets emitted. One of the level
	// constants above; anything else falls back to Info.
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`
}
