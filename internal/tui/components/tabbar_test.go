package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range Tabs {
		pos := 1
		for i, tab := range Tabs {
			w := TabVisualWidth(tab, i == active)
			assert.Equal(t, i, TabAtX(pos+w/2, active), "active=%d tab=%d", active, i)
			pos += w + len(tabSeparator)
		}
		assert.Equal(t, -1, TabAtX(0, active))
		assert.Equal(t, -1, TabAtX(pos+50, active))
	}
}

func TestTabIdxByKey(t *testing.T) {
	assert.Equal(t, 0, TabIdxByKey('c'))
	assert.Equal(t, 1, TabIdxByKey('l'))
	assert.Equal(t, -1, TabIdxByKey('z'))
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "12s", FormatAge(12*time.Second))
	assert.Equal(t, "4m", FormatAge(4*time.Minute+10*time.Second))
	assert.Equal(t, "2h 5m", FormatAge(2*time.Hour+5*time.Minute))
	assert.Equal(t, "3d 1h", FormatAge(73*time.Hour))
}
