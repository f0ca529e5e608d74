package main

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/tierboard/internal/config"
	"github.com/okian/tierboard/pkg/logger"
)

func testConfig() *config.Config {
	cfg := config.New(context.Background())
	cfg.Addr = "127.0.0.1:0"
	return cfg
}

// recordingLogger keeps every message so tests can assert on lifecycle events.
type recordingLogger struct {
	mu   *sync.Mutex
	msgs *[]string
}

func newRecordingLogger() recordingLogger {
	return recordingLogger{mu: &sync.Mutex{}, msgs: &[]string{}}
}

func (r recordingLogger) record(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.msgs = append(*r.msgs, msg)
}

func (r recordingLogger) seen(msg string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range *r.msgs {
		if m == msg {
			return true
		}
	}
	return false
}

func (r recordingLogger) Info(_ context.Context, msg string, _ ...logger.Field)  { r.record(msg) }
func (r recordingLogger) Error(_ context.Context, msg string, _ ...logger.Field) { r.record(msg) }
func (r recordingLogger) Debug(_ context.Context, msg string, _ ...logger.Field) { r.record(msg) }
func (r recordingLogger) Warn(_ context.Context, msg string, _ ...logger.Field)  { r.record(msg) }
func (r recordingLogger) Fatal(_ context.Context, msg string, _ ...logger.Field) { r.record(msg) }
func (r recordingLogger) Named(string) logger.Logger                             { return r }

func TestBuild(t *testing.T) {
	convey.Convey("Given the default configuration", t, func() {
		ctx := context.Background()
		a, err := build(ctx, testConfig(), logger.Nop())
		convey.So(err, convey.ShouldBeNil)
		convey.So(a.scheduler, convey.ShouldBeNil)
		convey.So(a.svc.Start(ctx), convey.ShouldBeNil)

		get := func(target string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			a.mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, http.NoBody))
			return w
		}

		convey.Convey("Then the bundled leaderboard is served", func() {
			w := get("/leaderboard?limit=2")
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			var body struct {
				Count int `json:"count"`
				Total int `json:"total"`
			}
			convey.So(json.Unmarshal(w.Body.Bytes(), &body), convey.ShouldBeNil)
			convey.So(body.Count, convey.ShouldEqual, 2)
			convey.So(body.Total, convey.ShouldEqual, 13)
		})

		convey.Convey("Then every surface is routed", func() {
			for _, target := range []string{"/", "/app.js", "/stats", "/tiers", "/presentation", "/state", "/api-docs", "/openapi.yaml", "/healthz", "/players/1"} {
				convey.So(get(target).Code, convey.ShouldEqual, http.StatusOK)
			}
		})
	})

	convey.Convey("Given a refresh interval", t, func() {
		cfg := testConfig()
		cfg.RefreshIntervalMS = 50
		a, err := build(context.Background(), cfg, logger.Nop())

		convey.Convey("Then a scheduler is created", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(a.scheduler, convey.ShouldNotBeNil)
		})
	})

	convey.Convey("Given an unusable source url", t, func() {
		cfg := testConfig()
		cfg.SourceURL = "ftp://example.com/board.json"
		_, err := build(context.Background(), cfg, logger.Nop())

		convey.Convey("Then build fails", func() {
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestRun(t *testing.T) {
	convey.Convey("Given a server on a free port", t, func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		convey.So(err, convey.ShouldBeNil)
		addr := ln.Addr().String()
		convey.So(ln.Close(), convey.ShouldBeNil)

		dir := t.TempDir()
		path := filepath.Join(dir, "board.json")
		doc := `[{"id":"x","playerName":"Xena","points":3100,"lastActive":"2026-10-16"}]`
		convey.So(os.WriteFile(path, []byte(doc), 0o600), convey.ShouldBeNil)

		cfg := testConfig()
		cfg.Addr = addr
		cfg.SourcePath = path
		cfg.RefreshIntervalMS = 20

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- run(ctx, cfg, logger.Nop()) }()

		convey.Convey("When the leaderboard is requested", func() {
			var body string
			deadline := time.Now().Add(3 * time.Second)
			for time.Now().Before(deadline) {
				resp, err := http.Get("http://" + addr + "/leaderboard")
				if err == nil {
					buf := new(strings.Builder)
					_, _ = io.Copy(buf, resp.Body)
					_ = resp.Body.Close()
					body = buf.String()
					break
				}
				time.Sleep(20 * time.Millisecond)
			}
			cancel()

			convey.Convey("Then the file source is served and shutdown is clean", func() {
				convey.So(body, convey.ShouldContainSubstring, "Xena")
				convey.So(<-done, convey.ShouldBeNil)
			})
		})
	})
}

func TestRunListenFailure(t *testing.T) {
	convey.Convey("Given an address that is already taken", t, func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		convey.So(err, convey.ShouldBeNil)
		defer ln.Close()

		cfg := testConfig()
		cfg.Addr = ln.Addr().String()
		cfg.RefreshIntervalMS = 10
		rec := newRecordingLogger()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		err = run(ctx, cfg, rec)

		convey.Convey("Then run reports the listener error and stops the scheduler", func() {
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(rec.seen("refresh scheduler stopped"), convey.ShouldBeTrue)
		})
	})
}
