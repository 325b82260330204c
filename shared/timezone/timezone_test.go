package timezone_test

import (
	"repnowait/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestGetLocation(t *testing.T) {
	assert.NotNil(t, timezone.GetLocation())
}

func TestFormat(t *testing.T) {
	stamp := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	formatted := timezone.Format(stamp, time.RFC3339)

	parsed, err := time.Parse(time.RFC3339, formatted)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(stamp))
}
