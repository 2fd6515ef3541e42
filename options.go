package mathtext

// Option configures an Engine during creation.
//
// Example:
//
//	// Computer Modern parameters, text style
//	e := mathtext.NewEngine()
//
//	// Parameters loaded from a font description file
//	p, err := mathtext.ParseParams(data)
//	e := mathtext.NewEngine(mathtext.WithParams(p), mathtext.WithDefaultStyle(mathtext.Display))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	params       Params
	defaultStyle Style
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		params:       DefaultParams(),
		defaultStyle: Text,
	}
}

// WithParams replaces the whole parameter set.
func WithParams(p Params) Option {
	return func(o *engineOptions) {
		o.params = p
	}
}

// WithScriptRatios sets the script and scriptscript size ratios.
func WithScriptRatios(script, scriptScript float64) Option {
	return func(o *engineOptions) {
		o.params.ScriptRatio = script
		o.params.ScriptScriptRatio = scriptScript
	}
}

// WithDefaultStyle sets the style used by MeasureDefault and DrawDefault.
// Inline formulae use Text (the default), displayed equations Display.
func WithDefaultStyle(s Style) Option {
	return func(o *engineOptions) {
		s.mustValid()
		o.defaultStyle = s
	}
}
