package domain

import (
	"testing"

	"recouvra/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ClassifyGap(t *testing.T) {
	require.Equal(t, GapDeficit, ClassifyGap(decimal.NewFromInt(200)))
	require.Equal(t, GapSurplus, ClassifyGap(decimal.NewFromInt(-50)))
	require.Equal(t, GapBalanced, ClassifyGap(decimal.Zero))
}

func Test_ComputeGap(t *testing.T) {
	r := DailyRecovery{
		ExpectedAmount:  decimal.NewFromInt(1000),
		RecoveredAmount: decimal.NewFromInt(800),
	}
	require.Equal(t, "200", r.ComputeGap().String())

	r.RecoveredAmount = decimal.NewFromInt(1200)
	require.Equal(t, "-200", r.ComputeGap().String())
}

func Test_ParseAmount(t *testing.T) {
	t.Run("numeric-looking strings parse", func(t *testing.T) {
		d, err := ParseAmount("1500")
		require.NoError(t, err)
		require.Equal(t, "1500", d.String())
	})

	t.Run("invalid input surfaces an error instead of a silent zero", func(t *testing.T) {
		_, err := ParseAmount("n/a")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid amount")
	})
}

func Test_RecoveryInput_Validate(t *testing.T) {
	valid := RecoveryInput{
		StoreID:         uuid.New(),
		Date:            util.NewDate(2024, 1, 5),
		ExpectedAmount:  decimal.NewFromInt(1000),
		RecoveredAmount: decimal.NewFromInt(800),
		Expenses:        decimal.Zero,
	}
	require.NoError(t, valid.Validate())

	missingStore := valid
	missingStore.StoreID = uuid.Nil
	require.Error(t, missingStore.Validate())

	negative := valid
	negative.ExpectedAmount = decimal.NewFromInt(-1)
	require.Error(t, negative.Validate())
}

func Test_CanMutate(t *testing.T) {
	require.True(t, CanMutate(RoleAdmin))
	require.False(t, CanMutate(RoleOwner))
	require.False(t, CanMutate(Role("")))
}
