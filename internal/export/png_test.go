package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/eatwatch/internal/model"
	"github.com/theirongolddev/eatwatch/internal/pipeline"
	"github.com/theirongolddev/eatwatch/internal/source"
)

func snapshot(weights ...float64) *pipeline.Snapshot {
	start := model.NewDate(2021, 1, 1)
	log := model.WeightLog{}
	for i, w := range weights {
		log = append(log, model.DatedSample{Date: start.AddDays(i), Weight: w})
	}
	parsed := source.Parsed{
		Goal: model.DatedSample{Date: model.NewDate(2021, 2, 10), Weight: 75},
		Log:  log,
	}
	return pipeline.Build(parsed, 3, start.AddDays(len(weights)))
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, snapshot(80, 79.6, 80.1, 79.2, 78.8), 640, 400))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestRenderPNG_EmptyLog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, snapshot(), 0, 0))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())
}

func TestRenderPNG_SingleMeasurement(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, snapshot(80), 320, 240))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRenderPNG_NilSnapshot(t *testing.T) {
	assert.Error(t, RenderPNG(&bytes.Buffer{}, nil, 0, 0))
}

func TestRenderPNG_AllOnOneDate(t *testing.T) {
	day := model.NewDate(2021, 1, 1)
	parsed := source.Parsed{
		Goal: model.DatedSample{Date: day, Weight: 75},
		Log: model.WeightLog{
			{Date: day, Weight: 80},
			{Date: day, Weight: 79.5},
		},
	}
	snap := pipeline.Build(parsed, 3, day)

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, snap, 320, 240))
	_, err := png.Decode(&buf)
	require.NoError(t, err)
}
