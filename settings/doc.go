// Package settings persists per-document viewer settings with global
// fallback defaults.
//
// Settings resolution is a three-layer merge: per-document values win
// over global values, which win over the built-in defaults returned by
// [Defaults]. The [Partial] type represents one layer, with nil fields
// falling through to the next; [Resolve] produces the concrete
// [Settings] handed to the view engine.
//
// The on-disk format is a single YAML file ([File]) holding the global
// fragment and a map of per-document fragments:
//
//	global:
//	  zoom_mode: page
//	documents:
//	  /books/manga-vol1.cbz:
//	    zoom_mode: contentwidth
//	    right_to_left: true
package settings
