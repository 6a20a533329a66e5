package constants

const (
	AppName           = "moodmatrix"
	DefaultConfigPath = "~/.config/moodmatrix/moodmatrix.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Mood level bounds
	MoodLevelMin = 1
	MoodLevelMax = 5

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "moodmatrix-"
	BackupFileSuffix = ".db"

	// WordCloudLimit caps the number of words returned for display
	WordCloudLimit = 20

	// TagWeightBonus is the frequency bonus a mood tag contributes to the word
	// cloud relative to a plain journal word
	TagWeightBonus = 3

	// Trend windows in days, inclusive of today
	TrendWindowShort = 7
	TrendWindowLong  = 30
)

// MoodDescriptions maps a mood level to its display label.
var MoodDescriptions = map[int]string{
	1: "Very Low",
	2: "Low",
	3: "Neutral",
	4: "Good",
	5: "Great",
}

// MoodGlyphs maps a mood level to its calendar/timeline glyph.
var MoodGlyphs = map[int]string{
	1: "😢",
	2: "😕",
	3: "😐",
	4: "🙂",
	5: "😄",
}
