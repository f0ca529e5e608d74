// Package fixtures generates leaderboard documents for demos and load tests.
package fixtures

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/okian/tierboard/internal/domain/model"
)

// Score bands by performer type; the mix keeps every tier populated.
const (
	caseRookie = iota
	caseCasual
	caseRegular
	caseStrong
	caseElite
	caseHero
	performerCases
)

// idNamespace seeds the deterministic player ids.
var idNamespace = uuid.MustParse("5b1c6f0e-7a0a-4c53-9d7e-2f0d5c6a9e41") //nolint:gochecknoglobals // fixed namespace

// Player is one generated record in the document wire format.
type Player struct {
	ID         string    `json:"id"`
	Name       string    `json:"playerName"`
	Points     int64     `json:"points"`
	LastActive time.Time `json:"lastActive"`
	Country    string    `json:"country"`
	Wins       int       `json:"wins"`
	Platform   string    `json:"platform"`
}

// Document is the object form of a leaderboard document.
type Document struct {
	Title    string         `json:"title,omitempty"`
	Subtitle string         `json:"subtitle,omitempty"`
	Columns  []model.Column `json:"columns,omitempty"`
	Players  []Player       `json:"players"`
}

// Generator produces reproducible documents from a seed.
type Generator struct {
	faker *gofakeit.Faker
	seed  int64
	now   time.Time
	title string
}

// Option configures a Generator.
type Option func(*Generator)

// WithNow anchors lastActive timestamps; players are active within the 30 days before it.
func WithNow(t time.Time) Option {
	return func(g *Generator) {
		if !t.IsZero() {
			g.now = t
		}
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// New creates a generator. Equal seeds and options give equal documents.
func New(seed int64, opts ...Option) *Generator {
	g := &Generator{
		faker: gofakeit.New(uint64(seed)),
		seed:  seed,
		now:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Seed returns the generator seed.
func (g *Generator) Seed() int64 { return g.seed }

// Document generates n players with the country, wins and platform columns.
func (g *Generator) Document(n int) Document {
	players := make([]Player, n)
	for i := range players {
		players[i] = g.player(i)
	}
	return Document{
		Title:    g.title,
		Subtitle: fmt.Sprintf("%d generated players", n),
		Columns: []model.Column{
			{Key: "country", Label: "Country"},
			{Key: "wins", Label: "Wins", Align: "right"},
			{Key: "platform", Label: "Platform"},
		},
		Players: players,
	}
}

// JSON renders Document(n) as indented JSON.
func (g *Generator) JSON(n int) ([]byte, error) {
	data, err := json.MarshalIndent(g.Document(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal fixture document: %w", err)
	}
	return data, nil
}

func (g *Generator) player(index int) Player {
	points := g.points()
	return Player{
		ID:         uuid.NewSHA1(idNamespace, []byte(strconv.FormatInt(g.seed, 10)+"/"+strconv.Itoa(index))).String(),
		Name:       g.faker.Gamertag(),
		Points:     points,
		LastActive: g.faker.DateRange(g.now.AddDate(0, 0, -30), g.now).UTC().Truncate(time.Second),
		Country:    g.faker.CountryAbr(),
		Wins:       int(points / 25),
		Platform:   g.faker.RandomString([]string{"pc", "console", "mobile"}),
	}
}

// points draws from one of the performer bands.
func (g *Generator) points() int64 {
	switch g.faker.Number(0, performerCases-1) {
	case caseRookie:
		return int64(g.faker.Number(0, 299))
	case caseCasual:
		return int64(g.faker.Number(300, 999))
	case caseRegular:
		return int64(g.faker.Number(1000, 2199))
	case caseStrong:
		return int64(g.faker.Number(2200, 3999))
	case caseElite:
		return int64(g.faker.Number(4000, 4999))
	default:
		return int64(g.faker.Number(5000, 9000))
	}
}
