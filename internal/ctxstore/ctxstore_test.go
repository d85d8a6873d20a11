package ctxstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFrom(t *testing.T) {
	key := Key("traceId")
	ctx := With(context.Background(), key, "abc")

	v, ok := From[string](ctx, key)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	_, ok = From[int](ctx, key)
	assert.False(t, ok)

	_, ok = From[string](ctx, Key("other"))
	assert.False(t, ok)
}

func TestMustFrom(t *testing.T) {
	key := Key("user")
	ctx := With(context.Background(), key, 42)

	assert.Equal(t, 42, MustFrom[int](ctx, key))
	assert.PanicsWithValue(t, "ctxstore: missing not found", func() {
		MustFrom[int](ctx, Key("missing"))
	})
}
