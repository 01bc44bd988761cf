package rendercache

import (
	"container/list"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Config holds configuration for the render cache.
type Config struct {
	// MaxBytes is the hard memory budget for decoded bitmaps. A single
	// bitmap whose estimated cost exceeds this budget is never admitted.
	// Default: 256 MB
	MaxBytes int64

	// MaxEntries caps the number of cached bitmaps regardless of size
	// Default: 64
	MaxEntries int

	// ZoomTolerance is the maximum relative zoom distance for nearest-
	// zoom bitmap reuse (0.25 allows serving a request for zoom 2.0
	// from a bitmap rendered between 1.5 and 2.5)
	// Default: 0.25
	ZoomTolerance float64
}

// DefaultConfig returns sensible default cache configuration.
func DefaultConfig() Config {
	return Config{
		MaxBytes:      256 * 1024 * 1024,
		MaxEntries:    64,
		ZoomTolerance: 0.25,
	}
}

// zoom values are quantized so floating point noise cannot split
// logically identical renderings across entries
const zoomQuantum = 1000

type key struct {
	page int
	zoom int64
}

func makeKey(page int, zoom float64) key {
	return key{page: page, zoom: int64(math.Round(zoom * zoomQuantum))}
}

type entry struct {
	key   key
	zoom  float64
	img   image.Image
	bytes int64
}

// Cache is a byte-budgeted LRU cache of decoded page bitmaps. Its
// Admit method is the admission predicate the view engine's cache-
// budget limiter queries; the engine never mutates cache contents.
//
// Cache is not safe for concurrent use; like the view engine it is
// confined to the rendering thread.
type Cache struct {
	cfg   Config
	order *list.List // front = most recently used
	items map[key]*list.Element
	used  int64
}

// New creates an empty cache with the given configuration.
func New(cfg Config) *Cache {
	return &Cache{
		cfg:   cfg,
		order: list.New(),
		items: make(map[key]*list.Element),
	}
}

// Admit reports whether a prospective bitmap of the given estimated
// byte cost could ever be stored: the cost must be positive and within
// the total budget. Admission does not reserve space; storing may still
// evict older bitmaps.
func (c *Cache) Admit(bytes int64) bool {
	return bytes > 0 && bytes <= c.cfg.MaxBytes
}

// BitmapBytes estimates the decoded byte cost of a bitmap (4 bytes per
// pixel, the cost model Admit budgets against).
func BitmapBytes(img image.Image) int64 {
	b := img.Bounds()
	return int64(b.Dx()) * int64(b.Dy()) * 4
}

// Put stores a rendered page bitmap, evicting least recently used
// entries until it fits. It returns false when the bitmap's cost is not
// admissible at all.
func (c *Cache) Put(page int, zoom float64, img image.Image) bool {
	bytes := BitmapBytes(img)
	if !c.Admit(bytes) {
		return false
	}

	k := makeKey(page, zoom)
	if el, ok := c.items[k]; ok {
		old := el.Value.(*entry)
		c.used -= old.bytes
		old.img = img
		old.bytes = bytes
		c.used += bytes
		c.order.MoveToFront(el)
		c.evict()
		return true
	}

	e := &entry{key: k, zoom: zoom, img: img, bytes: bytes}
	c.items[k] = c.order.PushFront(e)
	c.used += bytes
	c.evict()
	return true
}

// Get returns the bitmap cached for the page at the exact (quantized)
// zoom, promoting it to most recently used.
func (c *Cache) Get(page int, zoom float64) (image.Image, bool) {
	el, ok := c.items[makeKey(page, zoom)]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).img, true
}

// Nearest returns the cached bitmap for the page whose zoom is closest
// to the requested one within the configured tolerance, along with the
// zoom it was rendered at.
func (c *Cache) Nearest(page int, zoom float64) (image.Image, float64, bool) {
	var best *list.Element
	bestDist := math.Inf(1)

	for el := c.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry)
		if e.key.page != page {
			continue
		}
		dist := math.Abs(e.zoom - zoom)
		if dist < bestDist {
			best = el
			bestDist = dist
		}
	}

	if best == nil {
		return nil, 0, false
	}
	e := best.Value.(*entry)
	if zoom > 0 && bestDist/zoom > c.cfg.ZoomTolerance {
		return nil, 0, false
	}
	c.order.MoveToFront(best)
	return e.img, e.zoom, true
}

// GetScaled serves a request for a page at an arbitrary zoom by
// rescaling the nearest cached bitmap. The result is freshly allocated
// and not cached; callers wanting to keep it call Put themselves.
func (c *Cache) GetScaled(page int, zoom float64) (image.Image, bool) {
	src, srcZoom, ok := c.Nearest(page, zoom)
	if !ok || srcZoom <= 0 {
		return nil, false
	}
	if makeKey(page, zoom) == makeKey(page, srcZoom) {
		return src, true
	}

	factor := zoom / srcZoom
	sb := src.Bounds()
	dw := int(math.Round(float64(sb.Dx()) * factor))
	dh := int(math.Round(float64(sb.Dy()) * factor))
	if dw < 1 || dh < 1 {
		return nil, false
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst, true
}

// InvalidatePage drops all bitmaps cached for one page, after a reflow
// or annotation change.
func (c *Cache) InvalidatePage(page int) {
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		e := el.Value.(*entry)
		if e.key.page == page {
			c.remove(el)
		}
		el = next
	}
}

// Clear drops every cached bitmap.
func (c *Cache) Clear() {
	c.order.Init()
	c.items = make(map[key]*list.Element)
	c.used = 0
}

// Len returns the number of cached bitmaps.
func (c *Cache) Len() int {
	return c.order.Len()
}

// UsedBytes returns the estimated total byte cost of cached bitmaps.
func (c *Cache) UsedBytes() int64 {
	return c.used
}

func (c *Cache) evict() {
	for c.order.Len() > 0 &&
		(c.used > c.cfg.MaxBytes || (c.cfg.MaxEntries > 0 && c.order.Len() > c.cfg.MaxEntries)) {
		c.remove(c.order.Back())
	}
}

func (c *Cache) remove(el *list.Element) {
	e := el.Value.(*entry)
	c.order.Remove(el)
	delete(c.items, e.key)
	c.used -= e.bytes
}
