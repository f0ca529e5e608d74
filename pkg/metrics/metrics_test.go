package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry and custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("board"),
				WithHistogramBuckets([]float64{1, 10}),
				WithMetricsEnabled(true),
				WithRefreshInterval(5*time.Second),
				WithPrometheusRegistry(registry),
			)

			Convey("Then every collector is registered under the namespace", func() {
				So(manager, ShouldNotBeNil)
				manager.cacheHits.Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := map[string]bool{}
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["test_board_cache_hits_total"], ShouldBeTrue)
			})
		})
	})
}

func TestPipelineMetrics(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording loads", func() {
			before := testutil.ToFloat64(globalManager.loads.WithLabelValues("failure"))
			RecordLoad(false)
			RecordLoad(true)

			Convey("Then the outcome label is incremented", func() {
				So(testutil.ToFloat64(globalManager.loads.WithLabelValues("failure")), ShouldEqual, before+1)
			})
		})

		Convey("When recording cache activity", func() {
			hits := testutil.ToFloat64(globalManager.cacheHits)
			misses := testutil.ToFloat64(globalManager.cacheMisses)
			RecordCacheHit()
			RecordCacheMiss()
			RecordCacheMiss()

			Convey("Then hits and misses move independently", func() {
				So(testutil.ToFloat64(globalManager.cacheHits), ShouldEqual, hits+1)
				So(testutil.ToFloat64(globalManager.cacheMisses), ShouldEqual, misses+2)
			})
		})

		Convey("When updating the player distribution", func() {
			UpdatePlayers(3, map[string]int{"rookie": 2, "hero": 1})
			UpdatePlayers(1, map[string]int{"legend": 1})

			Convey("Then stale tiers are cleared", func() {
				So(testutil.ToFloat64(globalManager.playersTotal), ShouldEqual, 1)
				So(testutil.CollectAndCount(globalManager.tierPlayers), ShouldEqual, 1)
			})
		})

		Convey("When recording the remaining collectors", func() {
			So(func() {
				RecordFetchLatency("default", 3)
				RecordFetchError("status")
				RecordRankLatency(1)
				RecordNotification("players", 2)
				RecordHTTPRequest("leaderboard", "GET", "200")
				RecordHTTPRequestDuration("leaderboard", "GET", "200", 4)
				RecordHTTPError("refresh", "POST", "rate_limit", "medium")
				RecordRefreshRejected()
				UpdateSystemMemoryUsage(1024)
				UpdateSystemGoroutineCount(12)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		RecordCacheHit()
		families, err := GetRegistry().Gather()

		Convey("Then it gathers the service metrics without Go runtime collectors", func() {
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
			for _, f := range families {
				So(f.GetName(), ShouldNotStartWith, "go_")
			}
		})
	})
}

func TestRunSystemCollector(t *testing.T) {
	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("Then the collector samples once and returns", func() {
			RunSystemCollector(ctx)
			So(testutil.ToFloat64(globalManager.systemGoroutineCount), ShouldBeGreaterThan, 0)
			So(testutil.ToFloat64(globalManager.systemMemoryUsage), ShouldBeGreaterThan, 0)
		})
	})
}
