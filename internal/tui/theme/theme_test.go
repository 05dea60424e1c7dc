package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByName(t *testing.T) {
	assert.Equal(t, "tokyo-night", ByName("tokyo-night").Name)
	assert.Equal(t, FlexokiDark.Name, ByName("no-such-theme").Name)
}

func TestSetActive(t *testing.T) {
	t.Cleanup(func() { Active = FlexokiDark })

	SetActive("terminal")
	assert.Equal(t, Terminal, Active)
}

func TestThemesDefineSeriesColors(t *testing.T) {
	for _, th := range All {
		t.Run(th.Name, func(t *testing.T) {
			assert.NotEmpty(t, th.Goal)
			assert.NotEmpty(t, th.Measured)
			assert.NotEmpty(t, th.Smoothed)
			assert.NotEqual(t, th.Measured, th.Smoothed, "measured and trend must be distinguishable")
			assert.NotEqual(t, th.Goal, th.Smoothed)
		})
	}
}
