package xiangqi

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Perft 统计 depth 层合法着法树的叶子数。
func Perft(p *Position, depth int) uint64 {
	return perft(p, depth, nil)
}

// PerftCached 同 Perft，但用 cache 合并转置局面。cache 可以在多个 goroutine 间共享。
func PerftCached(p *Position, depth int, cache *PerftCache) uint64 {
	return perft(p, depth, cache)
}

func perft(p *Position, depth int, cache *PerftCache) uint64 {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(len(p.GenerateLegalMoves()))
	}
	if n, ok := cache.get(p, depth); ok {
		return n
	}
	var nodes uint64
	for _, ex := range p.GenerateLegalMovesAndPositions() {
		nodes += perft(&ex.Position, depth-1, cache)
	}
	cache.store(p, depth, nodes)
	return nodes
}

// Divide 按根着法分别统计，调试走法生成时用。键为 Move.Key()。
func Divide(p *Position, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, ex := range p.GenerateLegalMovesAndPositions() {
		out[ex.Move.Key()] = Perft(&ex.Position, depth-1)
	}
	return out
}

// PerftParallel 把根着法分给 workers 个 goroutine 计算；ctx 取消时尽快返回。
// workers <= 0 时使用 GOMAXPROCS。
func PerftParallel(ctx context.Context, p *Position, depth, workers int, cache *PerftCache) (uint64, error) {
	if depth <= 1 {
		return perft(p, depth, cache), nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var nodes atomic.Uint64
	for _, ex := range p.GenerateLegalMovesAndPositions() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nodes.Add(perft(&ex.Position, depth-1, cache))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return nodes.Load(), nil
}

const defaultPerftCacheCap = 1 << 20

type perftKey struct {
	hash  uint64
	depth int
}

type perftEntry struct {
	pos   Position
	nodes uint64
}

// PerftCache 按 (哈希, 深度) 缓存子树节点数。哈希可能碰撞，所以存整个局面再比对。
// 超过容量时整表重建。
type PerftCache struct {
	mu    sync.RWMutex
	m     map[perftKey]perftEntry
	limit int

	hits   atomic.Int64
	misses atomic.Int64
}

func NewPerftCache(capacity int) *PerftCache {
	if capacity <= 0 {
		capacity = defaultPerftCacheCap
	}
	return &PerftCache{
		m:     make(map[perftKey]perftEntry, 1<<12),
		limit: capacity,
	}
}

func (c *PerftCache) get(p *Position, depth int) (uint64, bool) {
	if c == nil {
		return 0, false
	}
	c.mu.RLock()
	e, ok := c.m[perftKey{p.Hash(), depth}]
	c.mu.RUnlock()
	if !ok || e.pos != *p {
		c.misses.Add(1)
		return 0, false
	}
	c.hits.Add(1)
	return e.nodes, true
}

func (c *PerftCache) store(p *Position, depth int, nodes uint64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	if len(c.m) >= c.limit {
		c.m = make(map[perftKey]perftEntry, 1<<12)
	}
	c.m[perftKey{p.Hash(), depth}] = perftEntry{pos: *p, nodes: nodes}
	c.mu.Unlock()
}

// Stats 返回命中与未命中次数。
func (c *PerftCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
