package i18n

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/text/language"

	"github.com/okian/tierboard/internal/domain/seniority"
)

func TestTranslator(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		tr, err := New()
		So(err, ShouldBeNil)

		Convey("Then every language translates the error message", func() {
			So(tr.Text(language.English, KeyError), ShouldEqual, "Error loading leaderboard data.")
			So(tr.Text(language.Spanish, KeyError), ShouldEqual, "Error al cargar los datos de la tabla de clasificación.")
			So(tr.Text(language.German, KeyError), ShouldEqual, "Fehler beim Laden der Bestenlistendaten.")
		})

		Convey("Then every language covers every key", func() {
			for key := range messages[language.English] {
				for _, tag := range Supported() {
					_, ok := messages[tag][key]
					So(ok, ShouldBeTrue)
				}
			}
		})

		Convey("Then every seniority level has a name and description", func() {
			for _, tier := range seniority.Tiers() {
				So(tr.SeniorityName(language.English, tier.Level), ShouldNotEqual, SeniorityKey(tier.Level))
				So(tr.SeniorityDescription(language.German, tier.Level), ShouldNotEqual, SeniorityDescKey(tier.Level))
			}
			So(tr.SeniorityName(language.Spanish, seniority.Hero), ShouldEqual, "Héroe")
		})

		Convey("Then unsupported languages fall back to English", func() {
			So(tr.Text(language.French, KeyLoading), ShouldEqual, "Loading leaderboard...")
			So(tr.Match("fr"), ShouldEqual, language.English)
			So(tr.Match("not a tag!"), ShouldEqual, language.English)
			So(tr.Match(""), ShouldEqual, language.English)
		})

		Convey("Then regional variants match their base language", func() {
			So(tr.Match("de-AT"), ShouldEqual, language.German)
			So(tr.Match("es-MX"), ShouldEqual, language.Spanish)
		})

		Convey("Then unknown keys render as themselves", func() {
			So(tr.Text(language.English, "no.such.key"), ShouldEqual, "no.such.key")
		})

		Convey("Then numbers use the language's grouping", func() {
			So(tr.Number(language.English, 1234567), ShouldEqual, "1,234,567")
			So(tr.Number(language.German, 1234567), ShouldEqual, "1.234.567")
		})

		Convey("Then the supported list is a copy", func() {
			tags := Supported()
			tags[0] = language.French
			So(Supported()[0], ShouldEqual, language.English)
		})
	})
}
