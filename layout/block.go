package layout

import (
	"sort"

	"github.com/tsawler/folio/model"
)

// Fragment is a positioned piece of page content (a text run, image, or
// vector drawing) in page points.
type Fragment struct {
	// BBox is the fragment's bounding box in page points
	BBox model.BBox

	// Text is the fragment's text content, when it has one
	Text string
}

// BlockConfig holds configuration for content-block detection
type BlockConfig struct {
	// MaxGap is the widest whitespace gap, in points, bridged when
	// grouping fragments into one block
	// Default: 12 points
	MaxGap float64

	// MinBlockWidth discards detected blocks narrower than this
	// Default: 4 points
	MinBlockWidth float64

	// MinBlockHeight discards detected blocks shorter than this
	// Default: 4 points
	MinBlockHeight float64
}

// DefaultBlockConfig returns sensible default configuration
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		MaxGap:         12.0,
		MinBlockWidth:  4.0,
		MinBlockHeight: 4.0,
	}
}

// BlockDetector groups page fragments into content blocks: spatially
// coherent rectangular regions separated by whitespace wider than the
// configured gap.
type BlockDetector struct {
	Config BlockConfig
}

// NewBlockDetector creates a detector with default configuration
func NewBlockDetector() *BlockDetector {
	return &BlockDetector{Config: DefaultBlockConfig()}
}

// NewBlockDetectorWithConfig creates a detector with custom configuration
func NewBlockDetectorWithConfig(config BlockConfig) *BlockDetector {
	return &BlockDetector{Config: config}
}

// Detect groups fragments into content blocks and returns their
// bounding boxes in reading order (top to bottom, then left to right).
func (d *BlockDetector) Detect(fragments []Fragment) []model.BBox {
	if len(fragments) == 0 {
		return nil
	}

	boxes := make([]model.BBox, 0, len(fragments))
	for _, f := range fragments {
		if f.BBox.IsValid() {
			boxes = append(boxes, f.BBox)
		}
	}

	// Transitively merge boxes whose gap-expanded outlines touch.
	reach := d.Config.MaxGap / 2
	for {
		merged := false
		for i := 0; i < len(boxes); i++ {
			for j := i + 1; j < len(boxes); j++ {
				if boxes[i].Expand(reach).Intersects(boxes[j].Expand(reach)) {
					boxes[i] = boxes[i].Union(boxes[j])
					boxes = append(boxes[:j], boxes[j+1:]...)
					merged = true
					j--
				}
			}
		}
		if !merged {
			break
		}
	}

	blocks := boxes[:0]
	for _, b := range boxes {
		if b.Width >= d.Config.MinBlockWidth && b.Height >= d.Config.MinBlockHeight {
			blocks = append(blocks, b)
		}
	}

	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].Y != blocks[j].Y {
			return blocks[i].Y < blocks[j].Y
		}
		return blocks[i].X < blocks[j].X
	})

	return blocks
}

// BlockAt returns the block containing the given point, in page points.
func BlockAt(blocks []model.BBox, p model.Point) (model.BBox, bool) {
	for _, b := range blocks {
		if b.Contains(p) {
			return b, true
		}
	}
	return model.BBox{}, false
}
