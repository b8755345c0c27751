package lunar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleCalculateMoonPhase() {
	mp := CalculateMoonPhase(time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC))
	fmt.Printf("%s, %d%% lit\n", mp.Phase, mp.Illumination)
	// Output:
	// New Moon, 0% lit
}

func TestIlluminationBounds(t *testing.T) {
	half := time.Duration(SynodicMonth / 2 * 24 * float64(time.Hour))

	full := CalculateMoonPhase(referenceNewMoon.Add(half))
	assert.Equal(t, FullMoon, full.Phase)
	assert.Equal(t, 100, full.Illumination)

	quarter := CalculateMoonPhase(referenceNewMoon.Add(half / 2))
	assert.Equal(t, FirstQuarter, quarter.Phase)
	assert.Equal(t, 50, quarter.Illumination)

	lastQuarter := CalculateMoonPhase(referenceNewMoon.Add(3 * half / 2))
	assert.Equal(t, LastQuarter, lastQuarter.Phase)
	assert.Equal(t, 50, lastQuarter.Illumination)
}

func TestCyclePositionBeforeReference(t *testing.T) {
	for _, d := range []time.Time{
		time.Date(1999, time.December, 25, 0, 0, 0, 0, time.UTC),
		time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2200, time.July, 4, 0, 0, 0, 0, time.UTC),
	} {
		pos := CyclePosition(d)
		assert.GreaterOrEqual(t, pos, 0.0, "position at %s", d)
		assert.Less(t, pos, SynodicMonth, "position at %s", d)
	}

	// One full cycle earlier lands in the same place.
	back := referenceNewMoon.Add(-time.Duration(SynodicMonth * 24 * float64(time.Hour)))
	assert.Equal(t, 0, CalculateMoonPhase(back).Illumination)
}

func TestPhasesVisitedInOrder(t *testing.T) {
	order := map[Phase]int{}
	for i, p := range Phases() {
		order[p] = i
	}
	require.Len(t, order, 8)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	seen := map[Phase]bool{}
	prev := CalculateMoonPhase(start).Phase
	seen[prev] = true
	for i := 1; i < 1000; i++ {
		cur := CalculateMoonPhase(start.AddDate(0, 0, i)).Phase
		idx, ok := order[cur]
		require.True(t, ok, "day %d: unknown phase %q", i, cur)
		if cur != prev {
			assert.Equal(t, (order[prev]+1)%8, idx, "day %d: %s followed %s", i, cur, prev)
		}
		seen[cur] = true
		prev = cur
	}
	assert.Len(t, seen, 8)
}

func TestFullMoonTable(t *testing.T) {
	table := []struct {
		day  time.Time
		full bool
		new  bool
	}{
		{time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC), true, false},
		{time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), false, false},
		{time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC), false, false},
		{time.Date(2025, time.June, 25, 12, 0, 0, 0, time.UTC), false, true},
		{time.Date(2025, time.June, 24, 12, 0, 0, 0, time.UTC), false, false},
		{time.Date(2025, time.January, 13, 23, 59, 0, 0, time.UTC), true, false},
		// 22:00 on the 10th in New York is already the 11th in UTC.
		{time.Date(2025, time.June, 10, 22, 0, 0, 0, time.FixedZone("EDT", -4*60*60)), true, false},
		{time.Date(2040, time.January, 1, 0, 0, 0, 0, time.UTC), false, false},
		{time.Date(2019, time.December, 12, 0, 0, 0, 0, time.UTC), false, false},
	}
	for _, tc := range table {
		t.Run(tc.day.Format(time.RFC3339), func(t *testing.T) {
			assert.Equal(t, tc.full, IsDateFullMoon(tc.day), "full moon")
			assert.Equal(t, tc.new, IsDateNewMoon(tc.day), "new moon")
		})
	}
}

func TestTablesSorted(t *testing.T) {
	for name, days := range map[string][]int32{"full": fullMoonDays, "new": newMoonDays} {
		for i := 1; i < len(days); i++ {
			gap := days[i] - days[i-1]
			assert.True(t, gap == 29 || gap == 30, "%s table: %d days between entries %d and %d", name, gap, i-1, i)
		}
	}
	first, last := TableRange()
	assert.Equal(t, 2020, first.Year())
	assert.Equal(t, 2035, last.Year())
}

func TestNextEvents(t *testing.T) {
	got, ok := NextFullMoon(time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2025-07-10", got.Format("2006-01-02"))

	got, ok = NextFullMoon(time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2025-06-11", got.Format("2006-01-02"))

	got, ok = NextNewMoon(time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2026-01-18", got.Format("2006-01-02"))

	_, ok = NextNewMoon(time.Date(2036, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

// The table and the mean-cycle model answer different questions, but on a
// real full or new moon day they should still roughly agree.
func TestTableAgreesWithModel(t *testing.T) {
	for _, d := range fullMoonDays {
		mp := CalculateMoonPhase(fromEpochDay(d).Add(12 * time.Hour))
		assert.Equal(t, FullMoon, mp.Phase, "full moon on %s", fromEpochDay(d).Format("2006-01-02"))
		assert.GreaterOrEqual(t, mp.Illumination, 95)
	}
	for _, d := range newMoonDays {
		mp := CalculateMoonPhase(fromEpochDay(d).Add(12 * time.Hour))
		assert.LessOrEqual(t, mp.Illumination, 5, "new moon on %s", fromEpochDay(d).Format("2006-01-02"))
	}
}
