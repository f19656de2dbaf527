package content

// Category classifies a content entry by the source collection it was
// converted from.
type Category string

const (
	CategoryQnA      Category = "qna"
	CategorySelftest Category = "selftest"
	CategoryProduct  Category = "product"
)

// Display returns the operator-facing label used in card descriptions.
func (c Category) Display() string {
	switch c {
	case CategoryQnA:
		return "QnA"
	case CategorySelftest:
		return "Selftest"
	case CategoryProduct:
		return "Products"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryQnA, CategorySelftest, CategoryProduct:
		return true
	}
	return false
}

// ImageRef is an image attached to an entry, with the size metadata the
// conversion pipeline declared for it. Zero Width/Height means the
// dimensions are undeclared.
type ImageRef struct {
	URL       string `json:"url"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
}

// HasDeclaredSize reports whether both dimensions are declared.
func (r ImageRef) HasDeclaredSize() bool {
	return r.Width > 0 && r.Height > 0
}

// Entry is one converted document. Entries are built once at load time
// and never mutated afterwards.
type Entry struct {
	ID       string     `json:"id"`
	Category Category   `json:"category"`
	Title    string     `json:"title"`
	Path     string     `json:"path"`
	Link     string     `json:"link"`
	Summary  string     `json:"summary"`
	BodyHTML string     `json:"-"`
	Images   []ImageRef `json:"images,omitempty"`
}
