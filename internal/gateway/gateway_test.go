package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/okian/tierboard/internal/adapters/repository"
	"github.com/okian/tierboard/internal/adapters/source"
	"github.com/okian/tierboard/internal/domain/model"
	"github.com/okian/tierboard/internal/domain/seniority"
)

type fakeFetcher struct {
	mu      sync.Mutex
	calls   int
	payload source.Payload
	err     error
}

func (f *fakeFetcher) Name() string { return "fake" }

func (f *fakeFetcher) Fetch(context.Context) (source.Payload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.payload, f.err
}

func (f *fakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func record(id, name string, points int64) source.Record {
	return source.Record{ID: id, Name: name, Points: points, LastActive: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)}
}

func newTestGateway(f source.Fetcher, clock *fakeClock, opts ...Option) *Gateway {
	base := []Option{
		WithClock(clock.Now),
		WithTracer(noop.NewTracerProvider().Tracer("test")),
	}
	return New(f, append(base, opts...)...)
}

func TestGatewayLoad(t *testing.T) {
	Convey("Given a gateway over a healthy source", t, func() {
		clock := &fakeClock{now: time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)}
		fetcher := &fakeFetcher{payload: source.Payload{
			Records: []source.Record{
				record("1", "Bob", 100),
				record("2", "Alice", 100),
				record("3", "Cara", 5000),
			},
			Presentation: model.Presentation{Title: "Cup"},
		}}
		gw := newTestGateway(fetcher, clock)
		ctx := context.Background()

		Convey("When loading", func() {
			res, err := gw.Load(ctx)

			Convey("Then players are classified and ranked with stats", func() {
				So(err, ShouldBeNil)
				So(res.Source, ShouldEqual, "fake")
				So(gw.SourceName(), ShouldEqual, "fake")
				So(res.LoadedAt, ShouldEqual, clock.Now())
				So(res.Presentation.Title, ShouldEqual, "Cup")
				So(res.Players, ShouldHaveLength, 3)
				So(res.Players[0].Name, ShouldEqual, "Cara")
				So(res.Players[0].Seniority.Level, ShouldEqual, seniority.Hero)
				So(res.Players[1].Name, ShouldEqual, "Alice")
				So(res.Players[1].Position, ShouldEqual, 2)
				So(res.Players[2].Name, ShouldEqual, "Bob")
				So(res.Stats.TotalPlayers, ShouldEqual, 3)
				So(res.Stats.TotalPoints, ShouldEqual, int64(5200))
				So(res.Stats.TopPlayer.Name, ShouldEqual, "Cara")
			})

			Convey("Then a second load within the window is served from cache", func() {
				clock.Advance(DefaultCacheTTL - time.Second)
				again, err := gw.Load(ctx)
				So(err, ShouldBeNil)
				So(again, ShouldPointTo, res)
				So(fetcher.Calls(), ShouldEqual, 1)
			})

			Convey("Then the cache expires exactly at the window end", func() {
				clock.Advance(DefaultCacheTTL)
				again, err := gw.Load(ctx)
				So(err, ShouldBeNil)
				So(again, ShouldNotPointTo, res)
				So(fetcher.Calls(), ShouldEqual, 2)
			})

			Convey("Then ClearCache forces a fetch", func() {
				gw.ClearCache()
				_, err := gw.Load(ctx)
				So(err, ShouldBeNil)
				So(fetcher.Calls(), ShouldEqual, 2)
			})
		})
	})

	Convey("Given a custom cache window", t, func() {
		clock := &fakeClock{now: time.Unix(0, 0)}
		fetcher := &fakeFetcher{}
		gw := newTestGateway(fetcher, clock, WithCacheTTL(time.Minute))

		_, err := gw.Load(context.Background())
		So(err, ShouldBeNil)
		clock.Advance(time.Minute)
		_, err = gw.Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then it is honoured", func() {
			So(fetcher.Calls(), ShouldEqual, 2)
		})
	})

	Convey("Given an empty source", t, func() {
		gw := newTestGateway(&fakeFetcher{}, &fakeClock{})
		res, err := gw.Load(context.Background())

		Convey("Then stats are zero and never fail", func() {
			So(err, ShouldBeNil)
			So(res.Players, ShouldBeEmpty)
			So(res.Stats.TotalPlayers, ShouldEqual, 0)
			So(res.Stats.TopPlayer, ShouldBeNil)
			So(res.Stats.Distribution, ShouldBeEmpty)
		})
	})
}

func TestGatewayFailures(t *testing.T) {
	Convey("Given a gateway whose source fails", t, func() {
		clock := &fakeClock{now: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)}
		fetcher := &fakeFetcher{err: source.ErrStatus}
		gw := newTestGateway(fetcher, clock)
		ctx := context.Background()

		Convey("When loading", func() {
			res, err := gw.Load(ctx)

			Convey("Then DataUnavailable wraps the cause", func() {
				So(res, ShouldBeNil)
				So(errors.Is(err, ErrDataUnavailable), ShouldBeTrue)
				So(errors.Is(err, source.ErrStatus), ShouldBeTrue)
			})

			Convey("Then nothing is cached and the next load retries", func() {
				fetcher.err = nil
				res, err := gw.Load(ctx)
				So(err, ShouldBeNil)
				So(res, ShouldNotBeNil)
				So(fetcher.Calls(), ShouldEqual, 2)
			})
		})

		Convey("When a refresh fails after expiry", func() {
			fetcher.err = nil
			_, err := gw.Load(ctx)
			So(err, ShouldBeNil)

			clock.Advance(DefaultCacheTTL)
			fetcher.err = errors.New("connection reset")
			_, err = gw.Load(ctx)
			So(errors.Is(err, ErrDataUnavailable), ShouldBeTrue)

			Convey("Then the expired entry is not resurrected", func() {
				_, err := gw.Load(ctx)
				So(err, ShouldNotBeNil)
				So(fetcher.Calls(), ShouldEqual, 3)
			})
		})
	})

	Convey("Given a record with a negative score", t, func() {
		fetcher := &fakeFetcher{payload: source.Payload{Records: []source.Record{record("1", "Neg", -1)}}}
		_, err := newTestGateway(fetcher, &fakeClock{}).Load(context.Background())

		Convey("Then the load fails with both sentinels", func() {
			So(errors.Is(err, ErrDataUnavailable), ShouldBeTrue)
			So(errors.Is(err, seniority.ErrInvalidScore), ShouldBeTrue)
		})
	})
}

func TestFailureReason(t *testing.T) {
	Convey("Given fetch errors", t, func() {
		So(failureReason(source.ErrStatus), ShouldEqual, "status")
		So(failureReason(source.ErrMalformed), ShouldEqual, "malformed")
		So(failureReason(seniority.ErrInvalidScore), ShouldEqual, "invalid_score")
		So(failureReason(context.DeadlineExceeded), ShouldEqual, "cancelled")
		So(failureReason(errors.New("boom")), ShouldEqual, "transport")
	})
}

func TestGatewayWriteBack(t *testing.T) {
	Convey("Given the default writer", t, func() {
		gw := newTestGateway(&fakeFetcher{}, &fakeClock{})
		ctx := context.Background()

		Convey("Then write-back operations are not implemented", func() {
			So(errors.Is(gw.SavePlayer(ctx, model.Player{ID: "1"}), repository.ErrNotImplemented), ShouldBeTrue)
			So(errors.Is(gw.UpdatePlayerPoints(ctx, "1", 10), repository.ErrNotImplemented), ShouldBeTrue)
		})
	})
}
