package mathtext

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Params holds the font dimensions and engine constants used by layout.
//
// All lengths are in em at the text size; the engine multiplies them by
// the backend font size and the style's size ratio. The defaults are the
// Computer Modern values (cmsy10 and cmex10 font dimensions).
type Params struct {
	ScriptRatio       float64 `toml:"script_ratio"`
	ScriptScriptRatio float64 `toml:"script_script_ratio"`

	// Math unit skips, in em (1 mu = 1/18 em).
	ThinMuSkip  float64 `toml:"thin_mu_skip"`
	MedMuSkip   float64 `toml:"med_mu_skip"`
	ThickMuSkip float64 `toml:"thick_mu_skip"`

	DelimiterFactor    float64 `toml:"delimiter_factor"`
	DelimiterShortfall float64 `toml:"delimiter_shortfall"`
	NullDelimiterSpace float64 `toml:"null_delimiter_space"`

	// Symbol font parameters (sigma 8 to 22).
	Num1       float64 `toml:"num1"`
	Num2       float64 `toml:"num2"`
	Num3       float64 `toml:"num3"`
	Denom1     float64 `toml:"denom1"`
	Denom2     float64 `toml:"denom2"`
	Sup1       float64 `toml:"sup1"`
	Sup2       float64 `toml:"sup2"`
	Sup3       float64 `toml:"sup3"`
	Sub1       float64 `toml:"sub1"`
	Sub2       float64 `toml:"sub2"`
	SupDrop    float64 `toml:"sup_drop"`
	SubDrop    float64 `toml:"sub_drop"`
	Delim1     float64 `toml:"delim1"`
	Delim2     float64 `toml:"delim2"`
	AxisHeight float64 `toml:"axis_height"`

	// Extension font parameters (xi 8 to 13).
	DefaultRuleThickness float64 `toml:"default_rule_thickness"`
	BigOpSpacing1        float64 `toml:"big_op_spacing1"`
	BigOpSpacing2        float64 `toml:"big_op_spacing2"`
	BigOpSpacing3        float64 `toml:"big_op_spacing3"`
	BigOpSpacing4        float64 `toml:"big_op_spacing4"`
	BigOpSpacing5        float64 `toml:"big_op_spacing5"`

	RadicalRuleThickness      float64 `toml:"radical_rule_thickness"`
	LargeOperatorDisplayScale float64 `toml:"large_operator_display_scale"`
}

// DefaultParams returns the Computer Modern parameter set.
func DefaultParams() Params {
	return Params{
		ScriptRatio:       0.7,
		ScriptScriptRatio: 0.5,

		ThinMuSkip:  3.0 / 18.0,
		MedMuSkip:   4.0 / 18.0,
		ThickMuSkip: 5.0 / 18.0,

		DelimiterFactor:    0.901,
		DelimiterShortfall: 0.5,
		NullDelimiterSpace: 0.12,

		Num1:       0.676508,
		Num2:       0.393732,
		Num3:       0.443731,
		Denom1:     0.685951,
		Denom2:     0.344841,
		Sup1:       0.412892,
		Sup2:       0.362892,
		Sup3:       0.288889,
		Sub1:       0.15,
		Sub2:       0.247217,
		SupDrop:    0.386108,
		SubDrop:    0.05,
		Delim1:     2.39,
		Delim2:     1.01,
		AxisHeight: 0.25,

		DefaultRuleThickness: 0.04,
		BigOpSpacing1:        0.111112,
		BigOpSpacing2:        0.166667,
		BigOpSpacing3:        0.2,
		BigOpSpacing4:        0.6,
		BigOpSpacing5:        0.1,

		RadicalRuleThickness:      0.04,
		LargeOperatorDisplayScale: 1.4,
	}
}

// ParseParams decodes a TOML parameter file on top of DefaultParams.
// Keys that are absent keep their default value.
//
// Example file:
//
//	axis_height = 0.26
//	default_rule_thickness = 0.0395
//	large_operator_display_scale = 1.5
func ParseParams(data []byte) (Params, error) {
	p := DefaultParams()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("mathtext: failed to parse params: %w", err)
	}
	if err := p.validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// validate rejects parameter sets the style machine cannot use.
func (p Params) validate() error {
	if p.ScriptRatio <= 0 || p.ScriptRatio >= 1 {
		return fmt.Errorf("mathtext: script_ratio %v out of range (0, 1)", p.ScriptRatio)
	}
	if p.ScriptScriptRatio <= 0 || p.ScriptScriptRatio >= p.ScriptRatio {
		return fmt.Errorf("mathtext: script_script_ratio %v out of range (0, %v)", p.ScriptScriptRatio, p.ScriptRatio)
	}
	return nil
}
