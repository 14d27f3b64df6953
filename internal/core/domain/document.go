package domain

// DocumentInfo describes a loaded drawing as the tiling engine sees it:
// its pixel dimensions and nothing else.
type DocumentInfo struct {
	// Path is where the document was read from.
	Path string `json:"path"`

	// Format is the decoder that recognised it, e.g. "png" or "pdf".
	Format string `json:"format"`

	// Width and Height are the document size in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`
}
