package metrics

// Backend is an interface for font measurement backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs go-text/typesetting).
type Backend interface {
	// Parse parses font data (TTF or OTF) and returns a Parsed font.
	Parse(data []byte) (Parsed, error)
}

// Parsed represents a parsed font ready for measurement.
type Parsed interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// Advance returns the advance width of the glyph for r at the
	// given point size, in surface units.
	Advance(r rune, size float64) (float64, error)

	// LineHeight returns the recommended baseline-to-baseline distance
	// at the given point size, in surface units.
	LineHeight(size float64) float64
}

// backendRegistry holds registered measurement backends.
// The default backend is "ximage" (golang.org/x/image).
var backendRegistry = map[string]Backend{
	"ximage": ximageBackend{},
	"gotext": gotextBackend{},
}

// defaultBackendName is the name of the default backend.
const defaultBackendName = "ximage"

// RegisterBackend registers a custom measurement backend.
// This allows users to provide their own parsing implementation.
// Not safe for concurrent use with NewSource; register backends during
// program initialization.
func RegisterBackend(name string, b Backend) {
	backendRegistry[name] = b
}

// getBackend returns the backend with the given name, or nil.
func getBackend(name string) Backend {
	return backendRegistry[name]
}
