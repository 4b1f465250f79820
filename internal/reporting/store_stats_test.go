package reporting

import (
	"testing"

	"recouvra/internal/domain"
	"recouvra/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_StoreStats(t *testing.T) {
	t.Run("today contributes on exact date match only", func(t *testing.T) {
		storeID := uuid.New()
		store := &domain.StoreRef{Name: "Moroni Centre", Code: "MC1"}
		records := []domain.DailyRecovery{
			newRecord(storeID, store, util.NewDate(2024, 1, 5), 1000, 800, 0),
			newRecord(storeID, store, util.NewDate(2024, 1, 20), 500, 500, 0),
		}

		out := StoreStats(records, util.NewDate(2024, 1, 5))
		require.Len(t, out, 1)
		require.Equal(t, storeID, out[0].StoreID)
		require.Equal(t, "Moroni Centre", out[0].StoreName)
		require.Equal(t, "MC1", out[0].StoreCode)
		require.Equal(t, "800", out[0].Today.Recovered.String())
		require.Equal(t, "1300", out[0].Month.Recovered.String())
	})

	t.Run("never emits a store with zero contributing records", func(t *testing.T) {
		out := StoreStats(nil, util.NewDate(2024, 1, 5))
		require.Empty(t, out)
	})

	t.Run("missing store join is skipped, other stores unaffected", func(t *testing.T) {
		goodStore := uuid.New()
		records := []domain.DailyRecovery{
			newRecord(goodStore, &domain.StoreRef{Name: "Fomboni", Code: "FB1"}, util.NewDate(2024, 2, 10), 400, 300, 0),
			newRecord(uuid.New(), nil, util.NewDate(2024, 2, 10), 9999, 9999, 0),
		}

		out := StoreStats(records, util.NewDate(2024, 2, 10))
		require.Len(t, out, 1)
		require.Equal(t, goodStore, out[0].StoreID)
		require.Equal(t, "300", out[0].Today.Recovered.String())
		require.Equal(t, "300", out[0].Month.Recovered.String())

		// The skipped record still counts in the ungrouped period totals.
		totals := Totals(records)
		require.Equal(t, "10299", totals.Recovered.String())
	})

	t.Run("output sorted by store name", func(t *testing.T) {
		records := []domain.DailyRecovery{
			newRecord(uuid.New(), &domain.StoreRef{Name: "Zilimadjou", Code: "ZL1"}, util.NewDate(2024, 2, 1), 100, 100, 0),
			newRecord(uuid.New(), &domain.StoreRef{Name: "Anjouan", Code: "AN1"}, util.NewDate(2024, 2, 1), 100, 100, 0),
		}

		out := StoreStats(records, util.NewDate(2024, 2, 1))
		require.Len(t, out, 2)
		require.Equal(t, "Anjouan", out[0].StoreName)
		require.Equal(t, "Zilimadjou", out[1].StoreName)
	})
}
