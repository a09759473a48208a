package constants

// ViewState represents the current screen of the TUI application
type ViewState int

const (
	AppName          = "salmonometer"
	Version          = "v0.3.0"
	DefaultConfigDir = "~/.config/salmonometer"
	ConfigFileName   = "config.yaml"
	LogFileName      = "salmonometer.log"
	DefaultOutputDir = "exports"
	EnvPrefix        = "SALMONOMETER_"

	// DateFormat is the date format used for the Date column and all date inputs (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Session bounds
	MinFishCount         = 1
	MaxFishCount         = 50
	DefaultFishCount     = 10
	MinLocationCount     = 1
	MaxLocationCount     = 20
	DefaultLocationCount = 1

	// Record set column names
	ColumnGroup    = "Group"
	ColumnDate     = "Date"
	ColumnFish     = "Fish"
	ColumnLocation = "Location"
	ColumnImage    = "Image"

	// Keyring
	KeyringS3SecretUser = "s3-secret-access-key"
)

// View states
const (
	ViewConfigure ViewState = iota
	ViewRecording
	ViewExporting
)
