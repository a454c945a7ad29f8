package graffle

// Version is the graffle-slicer release version.
const Version = "0.3.0"

// Document represents a diagram document after conversion from its native
// container format to JSON. It holds the document's canvases (sheets) and the
// index of the canvas that was active when the document was last saved.
type Document struct {
	Sheets                 []Canvas `json:"Sheets"`
	IndexOfLastSavedCanvas int      `json:"IndexOfLastSavedCanvas"`
}

// Canvas represents a single page/sheet of the document. Its title doubles as
// the default output directory name for exported slices. A canvas exposes its
// graphics either through an export-oriented shape list or through the general
// graphics list; exactly one non-empty collection is used per canvas.
type Canvas struct {
	SheetTitle   string    `json:"SheetTitle"`
	ExportShapes []Graphic `json:"ExportShapes,omitempty"`
	GraphicsList []Graphic `json:"GraphicsList,omitempty"`
}

// Graphic represents a single node in a canvas's nested graphic structure.
// A graphic with a Name is an export target and must carry a Bounds string;
// a graphic without a Name is a pure container and only matters for the named
// descendants it holds. Children may appear under either of two structurally
// equivalent collections, and a node may populate both.
type Graphic struct {
	ID           int       `json:"ID,omitempty"`
	Name         string    `json:"Name,omitempty"`
	Bounds       string    `json:"Bounds,omitempty"`
	Graphics     []Graphic `json:"Graphics,omitempty"`
	GraphicsList []Graphic `json:"GraphicsList,omitempty"`
}

// Graphics returns the canvas's root graphic collection. The export shape
// list takes precedence over the general graphics list; the two are never
// merged.
func (c *Canvas) Graphics() []Graphic {
	if len(c.ExportShapes) > 0 {
		return c.ExportShapes
	}
	return c.GraphicsList
}
