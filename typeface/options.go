package typeface

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
	name       string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
		name:       "<memory>",
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" (golang.org/x/image/font/sfnt); "gotext" selects
// github.com/go-text/typesetting. Custom parsers can be registered with
// RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithName labels the font resource in logs and load errors.
// NewFontSourceFromFile uses the file path.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}
