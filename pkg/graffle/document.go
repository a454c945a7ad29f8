package graffle

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ParseDocument decodes a converted diagram document from r.
// The document is expected to be the JSON form of the diagram's native
// container format; the conversion itself happens outside this package.
func ParseDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &doc, nil
}

// LoadDocument reads and decodes a converted diagram document from path.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %q: %w", path, err)
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", path, err)
	}
	return doc, nil
}

// CurrentCanvas returns the canvas that was active when the document was last
// saved. Returns an error if the stored index does not identify a canvas.
func (d *Document) CurrentCanvas() (*Canvas, error) {
	i := d.IndexOfLastSavedCanvas
	if i < 0 || i >= len(d.Sheets) {
		return nil, fmt.Errorf("selected canvas index %d out of range (document has %d canvases)", i, len(d.Sheets))
	}
	return &d.Sheets[i], nil
}

// CanvasByTitle returns the canvas whose SheetTitle matches title exactly.
// Returns an error if no canvas carries that title.
func (d *Document) CanvasByTitle(title string) (*Canvas, error) {
	for i := range d.Sheets {
		if d.Sheets[i].SheetTitle == title {
			return &d.Sheets[i], nil
		}
	}
	return nil, fmt.Errorf("canvas %q not found", title)
}
