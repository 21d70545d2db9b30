package metrics

// SourceOption configures Source creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for a Source.
type sourceConfig struct {
	backendName   string
	referenceRune rune
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		backendName:   defaultBackendName,
		referenceRune: '0', // digit advance defines the cell column
	}
}

// WithBackend specifies the measurement backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype;
// "gotext" selects go-text/typesetting HarfBuzz shaping.
//
// Custom backends can be registered with RegisterBackend.
func WithBackend(name string) SourceOption {
	return func(c *sourceConfig) {
		c.backendName = name
	}
}

// WithReferenceRune sets the glyph whose advance defines the cell width.
// The default is '0'. For monospace fonts any covered rune gives the
// same answer; for proportional fonts pick the glyph your diagrams
// align against.
func WithReferenceRune(r rune) SourceOption {
	return func(c *sourceConfig) {
		c.referenceRune = r
	}
}
