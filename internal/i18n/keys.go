package i18n

// Message keys.
const (
	KeyTitle        = "app.title"
	KeySubtitle     = "app.subtitle"
	KeyLoading      = "app.loading"
	KeyError        = "app.error"
	KeyErrorGeneral = "app.error.general"
	KeyRefresh      = "app.refresh"
	KeyNoData       = "app.nodata"
	KeyNotAvailable = "app.na"

	KeyColRank   = "leaderboard.rank"
	KeyColPlayer = "leaderboard.player"
	KeyColPoints = "leaderboard.points"
	KeyColLevel  = "leaderboard.level"

	KeyLastActive = "tooltip.lastActive"
	KeyStatus     = "tooltip.status"
	KeyActive     = "tooltip.active"
	KeyInactive   = "tooltip.inactive"

	KeyStatsPlayers = "stats.players"
	KeyStatsTotal   = "stats.total"
	KeyStatsAverage = "stats.average"
	KeyStatsTop     = "stats.top"

	seniorityPrefix = "seniority."
	descSuffix      = ".desc"
)

// SeniorityKey returns the key of a level's display name.
func SeniorityKey(level string) string { return seniorityPrefix + level }

// SeniorityDescKey returns the key of a level's description.
func SeniorityDescKey(level string) string { return seniorityPrefix + level + descSuffix }
