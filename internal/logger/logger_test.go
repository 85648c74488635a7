package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FormatByEnvironment(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		format      string
		wantJSON    bool
	}{
		{"production uses json", "production", "", true},
		{"development uses pretty", "development", "", false},
		{"staging uses pretty", "staging", "", false},
		{"explicit json wins", "development", "json", true},
		{"explicit pretty wins", "production", "pretty", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Config{Writer: &buf, Environment: tt.environment, Format: tt.format, NoColor: true})
			log.Info("hello")

			line := strings.TrimSpace(buf.String())
			assert.Equal(t, tt.wantJSON, json.Valid([]byte(line)), line)
		})
	}
}

func TestNew_DefaultWriter(t *testing.T) {
	log := New(Config{Format: "json"})
	require.NotNil(t, log)
	assert.NotNil(t, log.Logger)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLogger_ComponentJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "json"})

	log.Component("store").Info("opened", "path", "/tmp/data")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "store", rec[ComponentKey])
	assert.Equal(t, "opened", rec["msg"])
	assert.Equal(t, "/tmp/data", rec["path"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "json", Level: slog.LevelWarn})

	log.Debug("debug")
	log.Info("info")
	log.Warn("warn")
	log.Error("error")

	out := buf.String()
	assert.NotContains(t, out, `"msg":"debug"`)
	assert.NotContains(t, out, `"msg":"info"`)
	assert.Contains(t, out, `"msg":"warn"`)
	assert.Contains(t, out, `"msg":"error"`)
}

func newPretty(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	h := NewPrettyHandler(buf, &slog.HandlerOptions{Level: level})
	h.noColor = true
	return slog.New(h)
}

func TestPrettyHandler_Line(t *testing.T) {
	var buf bytes.Buffer
	log := newPretty(&buf, slog.LevelDebug)

	log.Info("schedule saved", "household_id", "hh-abc", "cells", 3)

	line := strings.TrimSuffix(buf.String(), "\n")
	parts := strings.SplitN(line, " ", 3)
	require.Len(t, parts, 3)
	_, err := time.Parse("15:04:05", parts[0])
	assert.NoError(t, err)
	assert.Equal(t, "INF", parts[1])
	assert.Equal(t, "schedule saved household_id=hh-abc cells=3", parts[2])
}

func TestPrettyHandler_ComponentTag(t *testing.T) {
	t.Run("from With", func(t *testing.T) {
		var buf bytes.Buffer
		log := newPretty(&buf, slog.LevelInfo).With(ComponentKey, "catalog")

		log.Info("reloaded", "entries", 73)
		assert.Contains(t, buf.String(), "INF [catalog] reloaded entries=73")
		assert.NotContains(t, buf.String(), "component=")
	})

	t.Run("from record", func(t *testing.T) {
		var buf bytes.Buffer
		newPretty(&buf, slog.LevelInfo).Info("listening", ComponentKey, "api", "port", "8080")
		assert.Contains(t, buf.String(), "INF [api] listening port=8080")
	})

	t.Run("inside a group stays an attribute", func(t *testing.T) {
		var buf bytes.Buffer
		newPretty(&buf, slog.LevelInfo).WithGroup("req").Info("x", ComponentKey, "api")
		assert.Contains(t, buf.String(), "req.component=api")
		assert.NotContains(t, buf.String(), "[api]")
	})
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
		color string
	}{
		{slog.LevelDebug, "DBG", colorMagenta},
		{slog.LevelInfo, "INF", colorGreen},
		{slog.LevelWarn, "WRN", colorYellow},
		{slog.LevelError, "ERR", colorRed},
		{slog.LevelError + 4, "ERROR+4", colorGray},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, color := formatLevel(tt.level)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.color, color)
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))

	nilOpts := NewPrettyHandler(&bytes.Buffer{}, nil)
	assert.False(t, nilOpts.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, nilOpts.Enabled(context.Background(), slog.LevelInfo))
}

func TestPrettyHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	log := newPretty(&buf, slog.LevelInfo).
		With("household_id", "hh-1").
		WithGroup("cycle")

	log.Info("cycled",
		slog.String("entry", "icode"),
		slog.Group("week", slog.String("id", "w01")),
		slog.Group("", slog.Int("kids", 2)),
		slog.Group("empty"),
	)

	assert.Contains(t, buf.String(), "cycled household_id=hh-1 cycle.entry=icode cycle.week.id=w01 cycle.kids=2\n")
}

func TestPrettyHandler_WithAttrsDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := newPretty(&buf, slog.LevelInfo)
	a := base.With("k", "a")
	b := base.With("k", "b")

	a.Info("one")
	b.Info("two")
	base.Info("three")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "one k=a"))
	assert.True(t, strings.HasSuffix(lines[1], "two k=b"))
	assert.True(t, strings.HasSuffix(lines[2], "three"))
}

func TestPrettyHandler_Colors(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)
	slog.New(h).Warn("careful", ComponentKey, "store")

	out := buf.String()
	assert.Contains(t, out, colorYellow+"WRN"+colorReset)
	assert.Contains(t, out, colorBlue+"[store]"+colorReset)
	assert.Contains(t, out, colorBold+"careful"+colorReset)
}

func TestPrettyHandler_WithSource(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{AddSource: true})
	h.noColor = true
	slog.New(h).Info("here")

	assert.Contains(t, buf.String(), "logger_test.go:")
}

func TestPrettyHandler_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	log := newPretty(&buf, slog.LevelInfo)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info("msg", "i", i)
		}()
	}
	wg.Wait()

	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 20)
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2026, 6, 23, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		v    slog.Value
		want string
	}{
		{"plain string", slog.StringValue("bsd405"), "bsd405"},
		{"empty string", slog.StringValue(""), `""`},
		{"spaces", slog.StringValue("Jun 23"), `"Jun 23"`},
		{"equals", slog.StringValue("a=b"), `"a=b"`},
		{"int", slog.IntValue(12), "12"},
		{"bool", slog.BoolValue(true), "true"},
		{"duration", slog.DurationValue(1500 * time.Millisecond), "1.5s"},
		{"time", slog.TimeValue(ts), "2026-06-23T09:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.v))
		})
	}
}
