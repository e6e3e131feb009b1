package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "github.com/pingvi095/wifi/internal/adapters/redis"
)

func TestSessions_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	s := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing token: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "tok1", "admin", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	u, ok, err := s.Get(ctx, "tok1")
	if err != nil || !ok || u != "admin" {
		t.Fatalf("get: u=%q ok=%v err=%v", u, ok, err)
	}

	if err := s.Del(ctx, "tok1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "tok1"); ok {
		t.Fatal("token must be gone after del")
	}
}

func TestSessions_Expiry(t *testing.T) {
	mr := miniredis.RunT(t)
	s := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := s.Set(ctx, "tok2", "ops", time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)
	if _, ok, _ := s.Get(ctx, "tok2"); ok {
		t.Fatal("token must expire with its TTL")
	}
}
