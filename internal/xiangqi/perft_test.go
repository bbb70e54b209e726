package xiangqi

import (
	"context"
	"errors"
	"testing"
)

func TestPerftStartPosition(t *testing.T) {
	want := []uint64{1, 44, 1920, 79666}
	p := StartPosition()
	for depth, n := range want {
		if got := Perft(&p, depth); got != n {
			t.Errorf("perft(%d) = %d, want %d", depth, got, n)
		}
	}
}

func TestPerftParallel(t *testing.T) {
	p := StartPosition()
	got, err := PerftParallel(context.Background(), &p, 3, 4, nil)
	if err != nil || got != 79666 {
		t.Fatalf("PerftParallel = %d, %v", got, err)
	}
	got, err = PerftParallel(context.Background(), &p, 3, 0, NewPerftCache(0))
	if err != nil || got != 79666 {
		t.Fatalf("PerftParallel with cache = %d, %v", got, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := PerftParallel(ctx, &p, 3, 2, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled perft error = %v", err)
	}
}

func TestPerftCached(t *testing.T) {
	cache := NewPerftCache(0)
	for _, p := range samplePositions(t, 2, 20) {
		if got, want := PerftCached(&p, 2, cache), Perft(&p, 2); got != want {
			t.Fatalf("cached perft %d, want %d for\n%s", got, want, p.DebugString())
		}
	}

	p := StartPosition()
	first := PerftCached(&p, 3, cache)
	hits, _ := cache.Stats()
	second := PerftCached(&p, 3, cache)
	hits2, _ := cache.Stats()
	if first != 79666 || second != first {
		t.Fatalf("cached perft %d then %d", first, second)
	}
	if hits2 <= hits {
		t.Fatalf("second run did not hit the cache")
	}
}

func TestPerftCacheVerifiesPosition(t *testing.T) {
	var nilCache *PerftCache
	p := StartPosition()
	if _, ok := nilCache.get(&p, 3); ok {
		t.Fatalf("nil cache hit")
	}
	nilCache.store(&p, 3, 1)

	c := NewPerftCache(2)
	c.store(&p, 3, 79666)
	if n, ok := c.get(&p, 3); !ok || n != 79666 {
		t.Fatalf("get = %d %v", n, ok)
	}
	if _, ok := c.get(&p, 2); ok {
		t.Fatalf("depth is part of the key")
	}

	// 哈希相同但局面不同：不能命中
	other := p
	m, _ := ParseMove("h2e2", false)
	other.ApplyMove(m)
	c.m[perftKey{p.Hash(), 4}] = perftEntry{pos: other, nodes: 1}
	if _, ok := c.get(&p, 4); ok {
		t.Fatalf("collision returned a foreign entry")
	}

	// 超过容量整表重建
	c.store(&other, 1, 44)
	if len(c.m) != 1 {
		t.Fatalf("cache not reset at capacity: %d entries", len(c.m))
	}
	if _, ok := c.get(&other, 1); !ok {
		t.Fatalf("entry stored after reset is missing")
	}
}

func TestDivide(t *testing.T) {
	p := StartPosition()
	div := Divide(&p, 3)
	if len(div) != 44 {
		t.Fatalf("divide has %d root moves", len(div))
	}
	var total uint64
	for m, n := range div {
		if m.IsCapture() {
			t.Errorf("divide key %v carries the capture flag", m)
		}
		total += n
	}
	if total != Perft(&p, 3) {
		t.Fatalf("divide sums to %d", total)
	}
	if m, _ := ParseMove("h2e2", false); div[m] != Perft(played(p, m), 2) {
		t.Fatalf("divide[h2e2] = %d", div[m])
	}
	if len(Divide(&p, 0)) != 0 {
		t.Fatalf("depth 0 has no root moves")
	}
}

func played(p Position, m Move) *Position {
	p.Play(m)
	return &p
}

// 交换红黑后树的大小不变
func TestPerftColorSymmetry(t *testing.T) {
	for _, p := range samplePositions(t, 3, 40) {
		q := mustDecode(t, swapColors(p.Encode(Counters{})))
		if a, b := Perft(&p, 2), Perft(&q, 2); a != b {
			t.Fatalf("perft %d vs %d for\n%s", a, b, p.DebugString())
		}
	}
}
