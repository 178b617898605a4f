package attendance

import (
	"testing"
	"time"

	"library-attendance-backend/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISTClock(t *testing.T) {
	t.Run("TestOffset", func(t *testing.T) {
		_, offset := utils.NowIST().Zone()
		assert.Equal(t, 5*3600+30*60, offset)
	})

	t.Run("TestDateStringCrossesMidnight", func(t *testing.T) {
		// 20:00 UTC is already 01:30 the next day in IST
		late := time.Date(2025, 10, 10, 20, 0, 0, 0, time.UTC)
		assert.Equal(t, "2025-10-11", utils.DateStringIST(late))

		noon := time.Date(2025, 10, 10, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, "2025-10-10", utils.DateStringIST(noon))
	})
}

func TestDayWindowUTC(t *testing.T) {
	t.Run("TestBounds", func(t *testing.T) {
		start, end, err := utils.DayWindowUTC("2025-10-10")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 10, 10, 23, 59, 59, 999000000, time.UTC), end)

		inside := time.Date(2025, 10, 10, 12, 30, 0, 0, time.UTC)
		assert.False(t, inside.Before(start))
		assert.False(t, inside.After(end))

		nextDay := time.Date(2025, 10, 11, 0, 0, 0, 0, time.UTC)
		assert.True(t, nextDay.After(end))
	})

	t.Run("TestInvalidDates", func(t *testing.T) {
		for _, bad := range []string{"", "10-10-2025", "2025/10/10", "2025-13-40", "yesterday"} {
			_, _, err := utils.DayWindowUTC(bad)
			assert.Error(t, err, "expected %q to be rejected", bad)
		}
	})
}
