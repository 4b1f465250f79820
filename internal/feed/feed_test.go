package feed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Feed(t *testing.T) {
	t.Run("fan-out to every subscriber", func(t *testing.T) {
		f := New()
		var first, second []Event
		f.Subscribe(func(e Event) { first = append(first, e) })
		f.Subscribe(func(e Event) { second = append(second, e) })

		e := Event{Table: "daily_recoveries", Op: OpInsert, RecordID: uuid.New()}
		f.Publish(e)

		require.Equal(t, []Event{e}, first)
		require.Equal(t, []Event{e}, second)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		f := New()
		var got []Event
		unsubscribe := f.Subscribe(func(e Event) { got = append(got, e) })

		f.Publish(Event{Table: "daily_recoveries", Op: OpUpdate})
		unsubscribe()
		f.Publish(Event{Table: "daily_recoveries", Op: OpDelete})

		require.Len(t, got, 1)
		require.Equal(t, OpUpdate, got[0].Op)
	})

	t.Run("publish with no subscribers is a no-op", func(t *testing.T) {
		f := New()
		require.NotPanics(t, func() {
			f.Publish(Event{Table: "stores", Op: OpInsert})
		})
	})
}
