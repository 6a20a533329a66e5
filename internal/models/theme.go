package models

// AppTheme identifies a color theme from the fixed catalog
type AppTheme string

const (
	ThemeDefault     AppTheme = "default"
	ThemeCalmPastels AppTheme = "calmPastels"
	ThemeDeepForest  AppTheme = "deepForest"
	ThemeSunsetGlow  AppTheme = "sunsetGlow"
	ThemeMinimalMono AppTheme = "minimalMono"
	ThemeOceanBlue   AppTheme = "oceanBlue"
)

// ThemeOption describes one entry in the theme catalog
type ThemeOption struct {
	ID              AppTheme
	Name            string
	Description     string
	IsPremium       bool
	PrimaryColor    string
	SecondaryColor  string
	BackgroundColor string
	CardColor       string
	AccentColor     string
}

// ThemeCatalog is the fixed set of selectable themes. Premium-flagged themes
// require settings.IsPremium to select.
var ThemeCatalog = []ThemeOption{
	{
		ID:              ThemeDefault,
		Name:            "Default",
		Description:     "The original Mood Matrix theme",
		IsPremium:       false,
		PrimaryColor:    "#9c27b0",
		SecondaryColor:  "#e91e63",
		BackgroundColor: "#f5f5f5",
		CardColor:       "#ffffff",
		AccentColor:     "#ba68c8",
	},
	{
		ID:              ThemeCalmPastels,
		Name:            "Calm Pastels",
		Description:     "Soft, soothing pastel colors",
		IsPremium:       false,
		PrimaryColor:    "#9575cd",
		SecondaryColor:  "#f48fb1",
		BackgroundColor: "#f3e5f5",
		CardColor:       "#ffffff",
		AccentColor:     "#ce93d8",
	},
	{
		ID:              ThemeDeepForest,
		Name:            "Deep Forest",
		Description:     "Rich, earthy forest tones",
		IsPremium:       false,
		PrimaryColor:    "#2e7d32",
		SecondaryColor:  "#8d6e63",
		BackgroundColor: "#e8f5e9",
		CardColor:       "#ffffff",
		AccentColor:     "#81c784",
	},
	{
		ID:              ThemeSunsetGlow,
		Name:            "Sunset Glow",
		Description:     "Warm sunset-inspired colors",
		IsPremium:       true,
		PrimaryColor:    "#ff9800",
		SecondaryColor:  "#ff5722",
		BackgroundColor: "#fff3e0",
		CardColor:       "#ffffff",
		AccentColor:     "#ffb74d",
	},
	{
		ID:              ThemeMinimalMono,
		Name:            "Minimal Mono",
		Description:     "Clean monochromatic design",
		IsPremium:       true,
		PrimaryColor:    "#424242",
		SecondaryColor:  "#757575",
		BackgroundColor: "#f5f5f5",
		CardColor:       "#ffffff",
		AccentColor:     "#9e9e9e",
	},
	{
		ID:              ThemeOceanBlue,
		Name:            "Ocean Blue",
		Description:     "Calming ocean-inspired blues",
		IsPremium:       false,
		PrimaryColor:    "#0277bd",
		SecondaryColor:  "#00acc1",
		BackgroundColor: "#e1f5fe",
		CardColor:       "#ffffff",
		AccentColor:     "#4fc3f7",
	},
}

// LookupTheme returns the catalog entry for id, if any.
func LookupTheme(id AppTheme) (ThemeOption, bool) {
	for _, t := range ThemeCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return ThemeOption{}, false
}
