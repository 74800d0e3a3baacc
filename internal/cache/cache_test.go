package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestClient_SetGetDelete(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	c := New(mr.Addr(), "", 0)
	ctx := context.Background()

	got, err := c.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	got, err = c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	assert.NoError(t, c.Delete(ctx, "k"))

	got, err = c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_Expiry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	c := New(mr.Addr(), "", 0)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_FailSafeWhenUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	c := New(mr.Addr(), "", 0)
	ctx := context.Background()
	mr.Close()

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
}
