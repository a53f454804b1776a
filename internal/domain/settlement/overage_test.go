//go:build unit

package settlement_test

import (
	"testing"

	"ev-rental-pricing/internal/domain/settlement"
	"ev-rental-pricing/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestComputeOverage(t *testing.T) {
	t.Run("charges only beyond the permitted distance", func(t *testing.T) {
		got := settlement.ComputeOverage(settlement.OverageInput{
			OdometerAtHandover: ptr.To(1000.0),
			OdometerAtReturn:   ptr.To(1250.0),
			BatteryAtHandover:  ptr.To(95.0),
			BatteryAtReturn:    ptr.To(40.0),
			DailyKmAllowance:   100,
			RentalDays:         2,
			RatePerExcessKm:    4000,
		})

		want := settlement.OverageBreakdown{
			DistanceTraveled:  250,
			BatteryConsumed:   55,
			PermittedDistance: 200,
			ExcessDistance:    50,
			ExcessFee:         200_000,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, got.HasWarnings())
	})

	t.Run("no fee within the allowance", func(t *testing.T) {
		got := settlement.ComputeOverage(settlement.OverageInput{
			OdometerAtHandover: ptr.To(500.0),
			OdometerAtReturn:   ptr.To(650.0),
			BatteryAtHandover:  ptr.To(80.0),
			BatteryAtReturn:    ptr.To(30.0),
			DailyKmAllowance:   100,
			RentalDays:         2,
			RatePerExcessKm:    4000,
		})

		assert.Equal(t, 0.0, got.ExcessDistance)
		assert.Equal(t, int64(0), got.ExcessFee)
	})

	t.Run("missing readings compute as zero and warn", func(t *testing.T) {
		got := settlement.ComputeOverage(settlement.OverageInput{
			OdometerAtReturn: ptr.To(120.0),
			DailyKmAllowance: 100,
			RentalDays:       1,
			RatePerExcessKm:  4000,
		})

		assert.Equal(t, 120.0, got.DistanceTraveled)
		assert.Equal(t, int64(80_000), got.ExcessFee)
		assert.ElementsMatch(t, []settlement.Warning{
			settlement.WarnOdometerHandoverMissing,
			settlement.WarnBatteryHandoverMissing,
			settlement.WarnBatteryReturnMissing,
		}, got.Warnings)
	})

	t.Run("negative odometer delta clamps to zero", func(t *testing.T) {
		got := settlement.ComputeOverage(settlement.OverageInput{
			OdometerAtHandover: ptr.To(2000.0),
			OdometerAtReturn:   ptr.To(1500.0),
			BatteryAtHandover:  ptr.To(90.0),
			BatteryAtReturn:    ptr.To(60.0),
			DailyKmAllowance:   100,
			RentalDays:         3,
			RatePerExcessKm:    4000,
		})

		assert.Equal(t, 0.0, got.DistanceTraveled)
		assert.Equal(t, int64(0), got.ExcessFee)
		assert.Contains(t, got.Warnings, settlement.WarnNegativeDistanceClamped)
	})

	t.Run("rental days floor to one", func(t *testing.T) {
		got := settlement.ComputeOverage(settlement.OverageInput{
			OdometerAtHandover: ptr.To(0.0),
			OdometerAtReturn:   ptr.To(150.0),
			BatteryAtHandover:  ptr.To(100.0),
			BatteryAtReturn:    ptr.To(50.0),
			DailyKmAllowance:   100,
			RentalDays:         0,
			RatePerExcessKm:    1000,
		})

		assert.Equal(t, 100.0, got.PermittedDistance)
		assert.Equal(t, 50.0, got.ExcessDistance)
		assert.Equal(t, int64(50_000), got.ExcessFee)
	})

	t.Run("fee is monotonic in return odometer", func(t *testing.T) {
		prev := int64(-1)
		for _, odoReturn := range []float64{1000, 1100, 1199, 1200, 1201, 1300, 2500} {
			got := settlement.ComputeOverage(settlement.OverageInput{
				OdometerAtHandover: ptr.To(1000.0),
				OdometerAtReturn:   ptr.To(odoReturn),
				BatteryAtHandover:  ptr.To(100.0),
				BatteryAtReturn:    ptr.To(10.0),
				DailyKmAllowance:   100,
				RentalDays:         2,
				RatePerExcessKm:    4000,
			})
			assert.GreaterOrEqual(t, got.ExcessFee, prev)
			prev = got.ExcessFee
		}
	})
}
