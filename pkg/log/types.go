package log

// ZapConfig configures the zap backend.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // "production" or anything else for development
	Encoding     string // "json" or "console"
	ColorEnabled bool   // console encoding only
}

type ctxKey struct{}

// Mode values.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)
