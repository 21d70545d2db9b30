package cellbox

// ComposeOption configures a box composition.
//
// Example:
//
//	// Default light frame
//	box, err := cellbox.Compose(grid, origin, size)
//
//	// Double-line frame with an interior divider
//	box, err := cellbox.Compose(grid, origin, size,
//	    cellbox.WithStyle(cellbox.StyleDouble),
//	    cellbox.WithRowDivider(2),
//	)
type ComposeOption func(*composeConfig)

// composeConfig holds optional configuration for Compose.
type composeConfig struct {
	style       LineStyle
	rowDividers []int
	colDividers []int
}

// defaultComposeConfig returns the default composition options.
func defaultComposeConfig() composeConfig {
	return composeConfig{
		style: StyleLight,
	}
}

// WithStyle selects the glyph family for the frame and its dividers.
func WithStyle(s LineStyle) ComposeOption {
	return func(c *composeConfig) {
		c.style = s
	}
}

// WithRowDivider adds a horizontal divider at the given box-relative row.
// The row must be strictly interior: between 1 and rows-2 inclusive.
// May be given multiple times for multiple dividers.
func WithRowDivider(row int) ComposeOption {
	return func(c *composeConfig) {
		c.rowDividers = append(c.rowDividers, row)
	}
}

// WithColDivider adds a vertical divider at the given box-relative
// column. The column must be strictly interior: between 1 and cols-2
// inclusive. May be given multiple times.
func WithColDivider(col int) ComposeOption {
	return func(c *composeConfig) {
		c.colDividers = append(c.colDividers, col)
	}
}
