package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgredis "github.com/homazon/homazon-backend/pkg/redis"
)

type fakeKV struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = ttl
	return nil
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", pkgredis.Nil
	}
	return v, nil
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeKV) CartKey(sessionID string) string {
	return "hmz:cart:" + sessionID
}

func TestStoreLoadMissingCartReturnsEmpty(t *testing.T) {
	t.Parallel()

	store, err := NewStore(newFakeKV(), time.Hour)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	cart, err := store.Load(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cart.SessionID != "sess-1" {
		t.Fatalf("expected session sess-1, got %q", cart.SessionID)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Lines))
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	store, err := NewStore(kv, time.Hour)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	variantID := uuid.New()
	cart := &Cart{
		SessionID: "sess-2",
		Lines: []Line{{
			VariantID:      variantID,
			ProductID:      uuid.New(),
			Title:          "Blue",
			ProductTitle:   "Walkman",
			UnitPriceCents: 1999,
			DisplayPrice:   "$19.99",
			Quantity:       2,
		}},
	}
	if err := store.Save(ctx, cart); err != nil {
		t.Fatalf("save: %v", err)
	}
	if kv.ttls["hmz:cart:sess-2"] != time.Hour {
		t.Fatalf("expected ttl refresh, got %v", kv.ttls["hmz:cart:sess-2"])
	}

	loaded, err := store.Load(ctx, "sess-2")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Lines) != 1 || loaded.Lines[0].VariantID != variantID {
		t.Fatalf("unexpected lines %+v", loaded.Lines)
	}
	if loaded.SubtotalCents() != 3998 {
		t.Fatalf("expected subtotal 3998, got %d", loaded.SubtotalCents())
	}
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	store, err := NewStore(kv, time.Hour)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, &Cart{SessionID: "sess-3"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "sess-3"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	cart, err := store.Load(ctx, "sess-3")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatal("expected cart to be gone")
	}
}
