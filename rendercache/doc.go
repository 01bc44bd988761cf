// Package rendercache provides the byte-budgeted cache of decoded page
// bitmaps backing a paginated-document viewer.
//
// The cache exposes two faces. To the renderer it is a plain LRU store
// keyed by page and quantized zoom, with nearest-zoom reuse: a request
// close enough to an existing rendering is served by rescaling that
// bitmap (golang.org/x/image/draw) instead of decoding again. To the
// view engine it is only the [Cache.Admit] admission predicate: the
// engine asks whether a prospective bitmap's estimated cost would fit
// the budget and degrades its zoom request when it would not, but never
// mutates cache contents.
package rendercache
