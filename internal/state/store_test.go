package state

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/tierboard/internal/domain/model"
)

func TestSlot(t *testing.T) {
	Convey("Given a slot with listeners", t, func() {
		s := newSlot("n", 0, nil)
		var order []string
		s.Subscribe(func(v int) { order = append(order, "first") })
		s.Subscribe(func(v int) { order = append(order, "second") })
		s.Subscribe(nil)

		Convey("When it is set", func() {
			s.Set(5)

			Convey("Then listeners run synchronously in registration order", func() {
				So(order, ShouldResemble, []string{"first", "second"})
				So(s.Get(), ShouldEqual, 5)
				So(s.Name(), ShouldEqual, "n")
			})
		})

		Convey("When a listener reads the slot", func() {
			var seen int
			s.Subscribe(func(int) { seen = s.Get() })
			s.Set(9)

			Convey("Then it observes the new value", func() {
				So(seen, ShouldEqual, 9)
			})
		})

		Convey("When the same value is set twice", func() {
			s.Set(1)
			s.Set(1)

			Convey("Then listeners fire each time", func() {
				So(order, ShouldHaveLength, 4)
			})
		})
	})
}

func TestStore(t *testing.T) {
	Convey("Given a fresh store", t, func() {
		st := New()

		Convey("Then every slot starts empty", func() {
			snap := st.Snapshot()
			So(snap.Players, ShouldBeNil)
			So(snap.Loading, ShouldBeFalse)
			So(snap.Error, ShouldEqual, "")
			So(snap.Stats, ShouldBeNil)
		})

		Convey("When subscribing by name", func() {
			got := map[SlotName]any{}
			for _, name := range Names() {
				name := name
				So(st.Subscribe(name, func(v any) { got[name] = v }), ShouldBeNil)
			}

			st.Loading.Set(true)
			st.Error.Set("boom")
			players := []model.Player{{ID: "1"}}
			st.Players.Set(players)
			stats := &model.Stats{TotalPlayers: 1}
			st.Stats.Set(stats)

			Convey("Then each listener receives its slot's value", func() {
				So(got[SlotLoading], ShouldEqual, true)
				So(got[SlotError], ShouldEqual, "boom")
				So(got[SlotPlayers], ShouldResemble, players)
				So(got[SlotStats], ShouldPointTo, stats)
			})
		})

		Convey("When one slot is set", func() {
			fired := 0
			So(st.Subscribe(SlotPlayers, func(any) { fired++ }), ShouldBeNil)
			st.Loading.Set(true)

			Convey("Then other slots are not notified", func() {
				So(fired, ShouldEqual, 0)
			})
		})

		Convey("When subscribing to an unknown slot", func() {
			err := st.Subscribe("scores", func(any) {})

			Convey("Then ErrUnknownSlot is returned", func() {
				So(errors.Is(err, ErrUnknownSlot), ShouldBeTrue)
			})
		})

		Convey("When subscribing a nil listener", func() {
			So(st.Subscribe(SlotStats, nil), ShouldNotBeNil)
		})
	})
}
