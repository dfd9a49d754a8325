package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/psenarath/floodline/internal/model"
)

func TestCachedClient_ServesRepeatFromCache(t *testing.T) {
	inner := &scriptedClient{responses: []string{"answer", "should not be reached"}}
	cached := NewCachedClient(inner, time.Minute)

	req := model.UserRequest("same prompt", 0, 64)
	for i := 0; i < 3; i++ {
		text, err := cached.Chat(context.Background(), req)
		if err != nil {
			t.Fatalf("Chat failed: %v", err)
		}
		if text != "answer" {
			t.Errorf("Chat = %q, want cached answer", text)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
}

func TestCachedClient_DistinctRequestsMiss(t *testing.T) {
	inner := &scriptedClient{responses: []string{"a", "b"}}
	cached := NewCachedClient(inner, time.Minute)

	_, _ = cached.Chat(context.Background(), model.UserRequest("one", 0, 64))
	text, err := cached.Chat(context.Background(), model.UserRequest("two", 0, 64))
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if text != "b" || inner.calls != 2 {
		t.Errorf("distinct prompts should not collide: text=%q calls=%d", text, inner.calls)
	}
}

func TestCachedClient_NonZeroTemperaturePassesThrough(t *testing.T) {
	inner := &scriptedClient{responses: []string{"first", "second"}}
	cached := NewCachedClient(inner, time.Minute)

	req := model.UserRequest("creative prompt", 1, 64)
	a, _ := cached.Chat(context.Background(), req)
	b, _ := cached.Chat(context.Background(), req)
	if a != "first" || b != "second" {
		t.Errorf("non-deterministic requests must bypass the cache: %q, %q", a, b)
	}
}

func TestCachedClient_ErrorsNotCached(t *testing.T) {
	inner := &scriptedClient{
		responses: []string{"", "recovered"},
		errs:      []error{errors.New("transient"), nil},
	}
	cached := NewCachedClient(inner, time.Minute)

	req := model.UserRequest("prompt", 0, 64)
	if _, err := cached.Chat(context.Background(), req); err == nil {
		t.Fatal("first call should fail")
	}
	text, err := cached.Chat(context.Background(), req)
	if err != nil || text != "recovered" {
		t.Errorf("second call = (%q, %v), want recovery after uncached failure", text, err)
	}
}
