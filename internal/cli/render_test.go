package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSparkline(t *testing.T) {
	assert.Empty(t, RenderSparkline(nil))
	assert.Equal(t, "▁▁▁", RenderSparkline([]float64{80, 80, 80}))
	assert.Equal(t, "█▁", RenderSparkline([]float64{82, 78}))
}

func TestRenderProgressBar(t *testing.T) {
	bar := RenderProgressBar(50, 10)
	assert.Contains(t, bar, "50%")
	assert.Equal(t, 5, strings.Count(bar, "█"))

	over := RenderProgressBar(200, 10)
	assert.Equal(t, 10, strings.Count(over, "█"))
	assert.Contains(t, over, "200%")

	assert.Equal(t, 10, strings.Count(RenderProgressBar(-5, 10), "░"))
	assert.Empty(t, RenderProgressBar(50, 0))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Date", "Weight"},
		Rows:    [][]string{{"2021-01-01", "80.0"}},
	})
	assert.Contains(t, out, "2021-01-01")
	assert.Contains(t, out, "80.0")
	assert.Empty(t, RenderTable(Table{}))
}
