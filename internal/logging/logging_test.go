package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/quantity"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"off":     LevelOff,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, slog.LevelDebug).WithCommand("convert")
	q := quantity.MustNew(20, "mph")
	r := q.MustConvert("km/hr")
	l.LogConversion(context.Background(), q, "km/hr", r, nil)

	out := buf.String()
	assert.Contains(t, out, "conversion completed")
	assert.Contains(t, out, "command=convert")
	assert.Contains(t, out, `quantity="20 mi/hr"`)
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, slog.LevelDebug)
	l.LogEvaluation(context.Background(), 3, quantity.Quantity{}, errors.New("not enough operands"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "evaluation failed", rec["msg"])
	assert.Equal(t, float64(3), rec["tokens"])
	assert.Equal(t, "not enough operands", rec["error"])
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, slog.LevelWarn)
	l.LogEvaluation(context.Background(), 1, quantity.MustNew(1, "m"), nil)
	l.LogConversion(context.Background(), quantity.MustNew(1, "m"), "s", quantity.Quantity{}, quantity.ErrValueConversion)
	assert.Empty(t, buf.String())
}

func TestNoop(t *testing.T) {
	l := Noop()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotNil(t, New(nil).Logger)
}
