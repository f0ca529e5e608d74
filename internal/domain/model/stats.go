package model

// Stats aggregates a ranked player set.
type Stats struct {
	TotalPlayers  int            `json:"totalPlayers"`
	TotalPoints   int64          `json:"totalPoints"`
	AveragePoints int64          `json:"averagePoints"`
	TopPlayer     *Player        `json:"topPlayer"`
	Distribution  map[string]int `json:"distribution"`
}
