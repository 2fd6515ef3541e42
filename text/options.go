package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,
		parserName: defaultParserName,
	}
}

// WithCacheLimit sets the maximum number of cached glyph lookups.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype;
// "gotext" uses github.com/go-text/typesetting.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FontSetOption configures a FontSet.
type FontSetOption func(*fontSetConfig)

// fontSetConfig holds configuration for FontSet.
type fontSetConfig struct {
	boxCacheLimit int
	normalize     bool
}

// defaultFontSetConfig returns the default font set configuration.
func defaultFontSetConfig() fontSetConfig {
	return fontSetConfig{
		boxCacheLimit: 4096,
		normalize:     true,
	}
}

// WithBoxCacheLimit sets the maximum number of memoized string boxes.
// A value of 0 disables the cache limit.
func WithBoxCacheLimit(n int) FontSetOption {
	return func(c *fontSetConfig) {
		c.boxCacheLimit = n
	}
}

// WithNormalization toggles NFC normalization of strings before they are
// measured or resolved. It is on by default, so that decomposed input
// ("e" followed by U+0301) finds the precomposed glyph.
func WithNormalization(on bool) FontSetOption {
	return func(c *fontSetConfig) {
		c.normalize = on
	}
}
