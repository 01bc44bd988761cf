// Package folio computes the magnification and viewport alignment used
// to render pages in a paginated-document viewer.
//
// The engine resolves a set of fit policies (whole page, content
// bounding box, fixed width/height, multi-column pan, free zoom) while
// respecting device rotation, a reserved footer region, and the memory
// budget of a render cache. It is purely computational: it never
// decodes pixels, owns no cache, and persists nothing.
//
// # Collaborators
//
// A [View] depends on two narrow capabilities: a [DocumentGeometry]
// answering page size, used-content box, and content-block queries, and
// a [ZoomSink] receiving notifications. Concrete geometry sources ship
// in package layout (fixed-layout documents), package htmldoc
// (reflowable HTML), package epubdoc (EPUB books), and package ocr
// (scanned pages); package format sniffs a file and opens the right
// one. The render cache in package rendercache supplies the admission
// predicate consumed by the cache-budget limiter.
//
// # Usage
//
//	cache := rendercache.New(rendercache.DefaultConfig())
//	opts := folio.DefaultViewOptions()
//	opts.Admit = cache.Admit
//
//	view := folio.NewView(geom, sink, opts)
//	view.ViewportChanged(model.Size{Width: 600, Height: 800})
//	view.ApplySettings(settingsFile.For(docID))
//	view.SetMode(zoom.Page)
//
// Every qualifying event (page turn, rotation, resize, mode switch,
// gesture) is a direct method call on the View; recomputation happens
// inline and the sink is notified before the call returns. A View is
// confined to one logical thread; no locking is performed.
package folio
