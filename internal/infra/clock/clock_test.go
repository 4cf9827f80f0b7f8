package clock

import (
	"testing"
	"time"

	"library/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_TodayUsesConfiguredZone(t *testing.T) {
	c, err := New(&config.Config{Loan: &config.LoanConfig{Timezone: "America/Santiago"}})
	require.NoError(t, err)

	zc := c.(*zonedClock)
	// 02:30 UTC on the 11th is still the evening of the 10th in Santiago.
	zc.now = func() time.Time { return time.Date(2026, time.March, 11, 2, 30, 0, 0, time.UTC) }

	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), c.Today())
	assert.Equal(t, "America/Santiago", c.Now().Location().String())
}

func TestClock_DefaultsToUTC(t *testing.T) {
	c, err := New(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, c.Now().Location())
}

func TestClock_UnknownZone(t *testing.T) {
	_, err := New(&config.Config{Loan: &config.LoanConfig{Timezone: "Mars/Olympus"}})
	assert.Error(t, err)
}

func TestFixed(t *testing.T) {
	at := time.Date(2026, time.July, 1, 23, 0, 0, 0, time.UTC)
	c := Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), c.Today())
}
