package shared

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hex32 = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)

	assert.Regexp(t, hex32, traceID)
	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(context.Background())))
}

func TestGetTraceIDWithoutTrace(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
	assert.Empty(t, GetTraceID(context.WithValue(context.Background(), TraceIDKey, 42)))
}

func TestGenerateTraceIDWithRandFailure(t *testing.T) {
	original := randRead
	t.Cleanup(func() { randRead = original })

	randRead = func(b []byte) (int, error) { return 0, errors.New("entropy exhausted") }

	first := generateTraceID()
	second := generateTraceID()
	assert.Regexp(t, hex32, first)
	assert.NotEqual(t, first, second)
}

func TestGenerateTraceIDWithPartialRead(t *testing.T) {
	original := randRead
	t.Cleanup(func() { randRead = original })

	randRead = func(b []byte) (int, error) { return len(b) / 2, nil }

	assert.Regexp(t, hex32, generateTraceID())
}
