package ranking

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/okian/tierboard/internal/domain/model"
)

func player(name string, score int64) model.Player {
	return model.Player{ID: name, Name: name, Score: score}
}

func names(players []model.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

func positions(players []model.Player) []int {
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = p.Position
	}
	return out
}

func TestRank(t *testing.T) {
	Convey("Given a default ranker", t, func() {
		r := New()

		Convey("When ranking nothing", func() {
			out := r.Rank(nil)

			Convey("Then the result is empty but not nil", func() {
				So(out, ShouldNotBeNil)
				So(out, ShouldBeEmpty)
			})
		})

		Convey("When ranking a single player", func() {
			out := r.Rank([]model.Player{player("Solo", 0)})

			Convey("Then it takes position 1", func() {
				So(out[0].Position, ShouldEqual, 1)
			})
		})

		Convey("When two players tie on score", func() {
			out := r.Rank([]model.Player{player("Bob", 100), player("Alice", 100)})

			Convey("Then the name breaks the tie and positions stay distinct", func() {
				So(cmp.Diff([]string{"Alice", "Bob"}, names(out)), ShouldBeEmpty)
				So(cmp.Diff([]int{1, 2}, positions(out)), ShouldBeEmpty)
			})
		})

		Convey("When scores differ", func() {
			out := r.Rank([]model.Player{player("Z", 50), player("A", 100)})

			Convey("Then score takes priority over name", func() {
				So(out[0].Name, ShouldEqual, "A")
				So(out[0].Score, ShouldEqual, 100)
				So(out[0].Position, ShouldEqual, 1)
				So(out[1].Name, ShouldEqual, "Z")
				So(out[1].Position, ShouldEqual, 2)
			})
		})

		Convey("When names differ only by case", func() {
			out := r.Rank([]model.Player{player("bob", 10), player("Alice", 10), player("Carl", 10)})

			Convey("Then collation order is used instead of byte order", func() {
				So(cmp.Diff([]string{"Alice", "bob", "Carl"}, names(out)), ShouldBeEmpty)
			})
		})

		Convey("When the input is ranked", func() {
			in := []model.Player{player("B", 1), player("A", 2)}
			out := r.Rank(in)

			Convey("Then the input is not mutated", func() {
				So(cmp.Diff([]string{"B", "A"}, names(in)), ShouldBeEmpty)
				So(cmp.Diff([]int{0, 0}, positions(in)), ShouldBeEmpty)
				So(out[0].Name, ShouldEqual, "A")
			})

			Convey("Then ranking again is idempotent", func() {
				So(cmp.Diff(out, r.Rank(out), cmp.AllowUnexported(model.Value{})), ShouldBeEmpty)
			})
		})
	})
}

func TestRankProperties(t *testing.T) {
	Convey("Given random player sets", t, func() {
		rng := rand.New(rand.NewSource(42))
		r := New(WithLocale(language.German))
		So(r.Locale(), ShouldEqual, language.German)
		coll := collate.New(language.German)

		for round := 0; round < 50; round++ {
			n := rng.Intn(40)
			in := make([]model.Player, n)
			for i := range in {
				in[i] = player("p"+strconv.Itoa(rng.Intn(20)), int64(rng.Intn(10)))
			}
			out := r.Rank(in)

			So(len(out), ShouldEqual, n)
			for i, p := range out {
				So(p.Position, ShouldEqual, i+1)
				if i > 0 {
					prev := out[i-1]
					So(prev.Score, ShouldBeGreaterThanOrEqualTo, p.Score)
					if prev.Score == p.Score {
						So(coll.CompareString(prev.Name, p.Name), ShouldBeLessThanOrEqualTo, 0)
					}
				}
			}
			So(cmp.Diff(out, r.Rank(out), cmp.AllowUnexported(model.Value{})), ShouldBeEmpty)
		}
	})
}
