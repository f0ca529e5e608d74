package i18n

import "golang.org/x/text/language"

// messages holds every translation, keyed by language then message key.
var messages = map[language.Tag]map[string]string{ //nolint:gochecknoglobals // static tables
	language.English: {
		KeyTitle:        "Gaming Leaderboard",
		KeySubtitle:     "Track player rankings and achievements",
		KeyLoading:      "Loading leaderboard...",
		KeyError:        "Error loading leaderboard data.",
		KeyErrorGeneral: "Something went wrong. Please try refreshing the page.",
		KeyRefresh:      "Click to refresh leaderboard",
		KeyNoData:       "No players yet.",
		KeyNotAvailable: "N/A",

		KeyColRank:   "Rank",
		KeyColPlayer: "Player",
		KeyColPoints: "Points",
		KeyColLevel:  "Level",

		KeyLastActive: "Last Active",
		KeyStatus:     "Status",
		KeyActive:     "Active",
		KeyInactive:   "Inactive",

		KeyStatsPlayers: "Players",
		KeyStatsTotal:   "Total points",
		KeyStatsAverage: "Average points",
		KeyStatsTop:     "Top player",

		"seniority.rookie":       "Rookie",
		"seniority.beginner":     "Beginner",
		"seniority.apprentice":   "Apprentice",
		"seniority.intermediate": "Intermediate",
		"seniority.advanced":     "Advanced",
		"seniority.expert":       "Expert",
		"seniority.master":       "Master",
		"seniority.champion":     "Champion",
		"seniority.legend":       "Legend",
		"seniority.hero":         "Hero",

		"seniority.rookie.desc":       "Just starting out",
		"seniority.beginner.desc":     "Learning the basics",
		"seniority.apprentice.desc":   "Getting the hang of it",
		"seniority.intermediate.desc": "Solid foundation",
		"seniority.advanced.desc":     "Skilled player",
		"seniority.expert.desc":       "Highly experienced",
		"seniority.master.desc":       "Master of the game",
		"seniority.champion.desc":     "Championship level",
		"seniority.legend.desc":       "Legendary status",
		"seniority.hero.desc":         "Heroic achievement",
	},
	language.Spanish: {
		KeyTitle:        "Tabla de Clasificación de Juegos",
		KeySubtitle:     "Rastrea clasificaciones y logros de jugadores",
		KeyLoading:      "Cargando tabla de clasificación...",
		KeyError:        "Error al cargar los datos de la tabla de clasificación.",
		KeyErrorGeneral: "Algo salió mal. Por favor, actualiza la página.",
		KeyRefresh:      "Haz clic para actualizar la tabla de clasificación",
		KeyNoData:       "Todavía no hay jugadores.",
		KeyNotAvailable: "N/D",

		KeyColRank:   "Rango",
		KeyColPlayer: "Jugador",
		KeyColPoints: "Puntos",
		KeyColLevel:  "Nivel",

		KeyLastActive: "Última Actividad",
		KeyStatus:     "Estado",
		KeyActive:     "Activo",
		KeyInactive:   "Inactivo",

		KeyStatsPlayers: "Jugadores",
		KeyStatsTotal:   "Puntos totales",
		KeyStatsAverage: "Puntos promedio",
		KeyStatsTop:     "Mejor jugador",

		"seniority.rookie":       "Novato",
		"seniority.beginner":     "Principiante",
		"seniority.apprentice":   "Aprendiz",
		"seniority.intermediate": "Intermedio",
		"seniority.advanced":     "Avanzado",
		"seniority.expert":       "Experto",
		"seniority.master":       "Maestro",
		"seniority.champion":     "Campeón",
		"seniority.legend":       "Leyenda",
		"seniority.hero":         "Héroe",

		"seniority.rookie.desc":       "Recién empezando",
		"seniority.beginner.desc":     "Aprendiendo lo básico",
		"seniority.apprentice.desc":   "Cogiendo el truco",
		"seniority.intermediate.desc": "Base sólida",
		"seniority.advanced.desc":     "Jugador hábil",
		"seniority.expert.desc":       "Muy experimentado",
		"seniority.master.desc":       "Maestro del juego",
		"seniority.champion.desc":     "Nivel de campeonato",
		"seniority.legend.desc":       "Estatus legendario",
		"seniority.hero.desc":         "Logro heroico",
	},
	language.German: {
		KeyTitle:        "Gaming Bestenliste",
		KeySubtitle:     "Verfolge Spielerranglisten und Erfolge",
		KeyLoading:      "Bestenliste wird geladen...",
		KeyError:        "Fehler beim Laden der Bestenlistendaten.",
		KeyErrorGeneral: "Etwas ist schiefgelaufen. Bitte aktualisiere die Seite.",
		KeyRefresh:      "Klicken, um die Bestenliste zu aktualisieren",
		KeyNoData:       "Noch keine Spieler.",
		KeyNotAvailable: "k. A.",

		KeyColRank:   "Rang",
		KeyColPlayer: "Spieler",
		KeyColPoints: "Punkte",
		KeyColLevel:  "Stufe",

		KeyLastActive: "Zuletzt Aktiv",
		KeyStatus:     "Status",
		KeyActive:     "Aktiv",
		KeyInactive:   "Inaktiv",

		KeyStatsPlayers: "Spieler",
		KeyStatsTotal:   "Punkte gesamt",
		KeyStatsAverage: "Durchschnittliche Punkte",
		KeyStatsTop:     "Bester Spieler",

		"seniority.rookie":       "Neuling",
		"seniority.beginner":     "Anfänger",
		"seniority.apprentice":   "Lehrling",
		"seniority.intermediate": "Fortgeschritten",
		"seniority.advanced":     "Erfahren",
		"seniority.expert":       "Experte",
		"seniority.master":       "Meister",
		"seniority.champion":     "Champion",
		"seniority.legend":       "Legende",
		"seniority.hero":         "Held",

		"seniority.rookie.desc":       "Gerade erst angefangen",
		"seniority.beginner.desc":     "Lernt die Grundlagen",
		"seniority.apprentice.desc":   "Bekommt den Dreh raus",
		"seniority.intermediate.desc": "Solide Grundlage",
		"seniority.advanced.desc":     "Geschickter Spieler",
		"seniority.expert.desc":       "Sehr erfahren",
		"seniority.master.desc":       "Meister des Spiels",
		"seniority.champion.desc":     "Meisterschaftsniveau",
		"seniority.legend.desc":       "Legendärer Status",
		"seniority.hero.desc":         "Heroische Leistung",
	},
}
