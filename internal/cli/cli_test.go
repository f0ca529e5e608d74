package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/tierboard/internal/adapters/source"
)

func execute(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := NewRootCommand("1.2.3")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--color", "no"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestShowCommand(t *testing.T) {
	Convey("Given the bundled document", t, func() {
		Convey("When showing the top three", func() {
			out, _, err := execute("show", "--limit", "3")

			Convey("Then the highest scores are printed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldStartWith, "Loading leaderboard...\n")
				So(out, ShouldContainSubstring, "Aurora Vance")
				So(out, ShouldContainSubstring, "🥇 1st")
				So(out, ShouldContainSubstring, "5,230")
				So(out, ShouldNotContainSubstring, "Mila Novak")
				So(out, ShouldContainSubstring, "Players: 13")
			})
		})

		Convey("When showing one tier in German", func() {
			out, _, err := execute("--lang", "de", "show", "--tier", "Legend")

			Convey("Then only that tier is printed with localized numbers", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Kenji Mori")
				So(out, ShouldContainSubstring, "4.810")
				So(out, ShouldNotContainSubstring, "Aurora Vance")
			})
		})

		Convey("When the tier is unknown", func() {
			_, _, err := execute("show", "--tier", "wizard")

			Convey("Then the flag is rejected", func() {
				So(errors.Is(err, ErrInvalidFlag), ShouldBeTrue)
			})
		})

		Convey("When the color mode is unknown", func() {
			_, _, err := execute("--color", "sometimes", "tiers")
			So(errors.Is(err, ErrInvalidFlag), ShouldBeTrue)
		})
	})

	Convey("Given a remote source", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/board.json" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte(`{"title":"Remote Cup","players":[{"id":"a","playerName":"Zed","points":250,"lastActive":"2026-10-01"}]}`))
		}))
		defer srv.Close()

		Convey("When the document is served", func() {
			out, _, err := execute("show", "--url", srv.URL+"/board.json")

			Convey("Then its title and players are printed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Remote Cup")
				So(out, ShouldContainSubstring, "Zed")
			})
		})

		Convey("When the document is missing", func() {
			out, _, err := execute("show", "--url", srv.URL+"/missing.json")

			Convey("Then the load failure is reported", func() {
				So(errors.Is(err, ErrLoadFailed), ShouldBeTrue)
				So(out, ShouldContainSubstring, "Error loading leaderboard data.")
			})
		})

		Convey("When the url is not absolute", func() {
			_, _, err := execute("show", "--url", "board.json")
			So(errors.Is(err, source.ErrInvalidDescriptor), ShouldBeTrue)
		})
	})
}

func TestGenerateCommand(t *testing.T) {
	Convey("Given a seeded generate run", t, func() {
		out, _, err := execute("generate", "--count", "5", "--seed", "9", "--title", "Demo")
		So(err, ShouldBeNil)

		Convey("Then the output is a valid document", func() {
			payload, err := source.Decode([]byte(out))
			So(err, ShouldBeNil)
			So(len(payload.Records), ShouldEqual, 5)
			So(payload.Presentation.Title, ShouldEqual, "Demo")
		})

		Convey("Then the same seed repeats the output", func() {
			again, _, _ := execute("generate", "--count", "5", "--seed", "9", "--title", "Demo")
			So(again, ShouldEqual, out)
		})
	})

	Convey("Given an output file", t, func() {
		path := filepath.Join(t.TempDir(), "board.json")
		_, errOut, err := execute("generate", "-n", "4", "--seed", "1", "-o", path)
		So(err, ShouldBeNil)
		So(errOut, ShouldContainSubstring, "wrote 4 players")

		Convey("Then show can read it back", func() {
			out, _, err := execute("show", "--file", path)
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Players: 4")
		})

		Convey("Then the file is private", func() {
			info, err := os.Stat(path)
			So(err, ShouldBeNil)
			So(info.Mode().Perm(), ShouldEqual, os.FileMode(0o600))
		})
	})
}

func TestVerifyCommand(t *testing.T) {
	Convey("Given a server that is not running", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		Convey("Then verify fails", func() {
			_, _, err := execute("verify", "--server", srv.URL, "--timeout", "1s")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestTiersAndVersion(t *testing.T) {
	Convey("Given the tiers command", t, func() {
		out, _, err := execute("--lang", "es", "tiers")

		Convey("Then translated tier names are printed", func() {
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Héroe")
			So(out, ShouldContainSubstring, "Novato")
		})
	})

	Convey("Given the version command", t, func() {
		out, _, err := execute("version")

		Convey("Then the build version is printed", func() {
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Version: 1.2.3")
		})
	})

	Convey("Given color modes", t, func() {
		on, err := useColor("yes", &bytes.Buffer{})
		So(err, ShouldBeNil)
		So(on, ShouldBeTrue)
		auto, err := useColor("auto", &bytes.Buffer{})
		So(err, ShouldBeNil)
		So(auto, ShouldBeFalse)
	})
}
