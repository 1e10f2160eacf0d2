package gl

import "fmt"

// ReleasePolicy decides what TexturePool.Release does with the native texture.
type ReleasePolicy int

const (
	// RecycleHandle keeps the native texture alive and hands the same id
	// out again from Acquire. Whatever storage the texture had stays
	// attached until the caller redefines it.
	RecycleHandle ReleasePolicy = iota
	// DeleteOnRelease deletes the native texture and does not pool the id.
	DeleteOnRelease
)

// TexturePool recycles texture ids. Released ids are handed out again
// last-in first-out before new ones are generated. Releasing an id that is
// already pooled fails with ErrAlreadyPooled, so a pooled id is never
// handed to two owners.
type TexturePool struct {
	ctx    *Context
	policy ReleasePolicy
	free   []uint32
	pooled map[uint32]struct{}
}

// NewTexturePool returns an empty pool.
func NewTexturePool(c *Context, policy ReleasePolicy) *TexturePool {
	return &TexturePool{ctx: c, policy: policy, pooled: make(map[uint32]struct{})}
}

// Acquire returns a pooled id, or a new one from glGenTextures when the
// pool is empty.
func (p *TexturePool) Acquire() (uint32, error) {
	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		delete(p.pooled, id)
		return id, nil
	}
	f := p.ctx.fn
	if err := requireSlots(slotCheck{"glGenTextures", f.GenTextures != nil}); err != nil {
		return 0, err
	}
	var id uint32
	f.GenTextures(1, &id)
	return id, nil
}

// Release hands id back according to the pool's policy. Id 0 is ignored.
func (p *TexturePool) Release(id uint32) error {
	if id == 0 {
		return nil
	}
	if p.policy == DeleteOnRelease {
		return p.delete([]uint32{id})
	}
	if _, ok := p.pooled[id]; ok {
		return fmt.Errorf("%w: %d", ErrAlreadyPooled, id)
	}
	p.free = append(p.free, id)
	p.pooled[id] = struct{}{}
	return nil
}

// Len returns the number of pooled ids.
func (p *TexturePool) Len() int { return len(p.free) }

// Drain deletes every pooled texture and empties the pool.
func (p *TexturePool) Drain() error {
	if len(p.free) == 0 {
		return nil
	}
	if err := p.delete(p.free); err != nil {
		return err
	}
	p.free = p.free[:0]
	clear(p.pooled)
	return nil
}

func (p *TexturePool) delete(ids []uint32) error {
	f := p.ctx.fn
	if err := requireSlots(slotCheck{"glDeleteTextures", f.DeleteTextures != nil}); err != nil {
		return err
	}
	f.DeleteTextures(int32(len(ids)), &ids[0])
	return nil
}
