// Package config loads the settings of a gore generation run.
//
// Settings are read with viper from a JSON, TOML or YAML document laid over
// Default. Values are type checked: numbers written as strings are rejected
// instead of being coerced.
package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/soypat/gore"
	"github.com/soypat/gore/airfoil"
	"github.com/soypat/gore/helpers/matter"
	"github.com/spf13/viper"
)

// DefaultFile is the name of the configuration file read when none is given.
const DefaultFile = "gores_config.json"

// Configuration keys.
const (
	KeyAirfoilInput          = "airfoil_input"
	KeyAirfoilFormat         = "airfoil_format"
	KeyAirfoilName           = "airfoil_name"
	KeyEnvelopeLength        = "envelope_length"
	KeyGoreCount             = "gore_count"
	KeyStationCount          = "station_count"
	KeySpacingPolicy         = "spacing_policy"
	KeyInterpolationMode     = "interpolation_mode"
	KeyBunchingFactor        = "bunching_factor"
	KeyTruncationFraction    = "truncation_fraction"
	KeyShrinkageFactor       = "shrinkage_factor"
	KeyMaterial              = "material"
	KeyUnits                 = "units"
	KeyOutputScale           = "output_scale"
	KeyPageSize              = "page_size"
	KeyOutputFile            = "output_file"
	KeyDXFOutput             = "dxf_output"
	KeySTLOutput             = "stl_output"
	KeyPlotOutput            = "plot_output"
	KeyShadeOutput           = "shade_output"
	KeyGoresDrawn            = "gores_drawn"
	KeyPageMargin            = "page_margin"
	KeyCuttingClearance      = "cutting_clearance"
	KeyDrawBaseAirfoil       = "draw_base_airfoil"
	KeyDrawMargins           = "draw_margins"
	KeyDrawTextBox           = "draw_text_box"
	KeyTextBoxWidth          = "text_box_width"
	KeyTextBoxHeight         = "text_box_height"
	KeyDrawingInfo           = "drawing_info"
	KeyDrawAirfoilName       = "draw_airfoil_name"
	KeyNameFontSize          = "name_font_size"
	KeyDrawCenterline        = "draw_centerline"
	KeyDrawLengthLines       = "draw_length_lines"
	KeyLengthLinesPitch      = "length_lines_pitch"
	KeyDrawStationLabels     = "draw_station_labels"
	KeyConstructionLineWidth = "construction_line_width"
	KeySolidLineWidth        = "solid_line_width"
	KeyLineColor             = "line_color"
)

// Config holds every setting of a run. It is built once and passed by value.
type Config struct {
	AirfoilInput  string
	AirfoilFormat string
	AirfoilName   string
	// EnvelopeLength scales the profile so its chord has this length. 0 keeps raw coordinates.
	EnvelopeLength float64

	GoreCount          int
	StationCount       int
	SpacingPolicy      string
	InterpolationMode  string
	BunchingFactor     float64
	TruncationFraction float64
	ShrinkageFactor    float64
	Material           string

	// Units is the physical unit of one drawing unit on the sheet.
	Units string
	// OutputScale is drawing units per profile length unit.
	OutputScale float64
	PageSize    string

	OutputFile  string
	DXFOutput   string
	STLOutput   string
	PlotOutput  string
	ShadeOutput string

	GoresDrawn            int
	PageMargin            float64
	CuttingClearance      float64
	DrawBaseAirfoil       bool
	DrawMargins           bool
	DrawTextBox           bool
	TextBoxWidth          float64
	TextBoxHeight         float64
	DrawingInfo           []string
	DrawAirfoilName       bool
	NameFontSize          float64
	DrawCenterline        bool
	DrawLengthLines       bool
	LengthLinesPitch      float64
	DrawStationLabels     bool
	ConstructionLineWidth float64
	SolidLineWidth        float64
	LineColor             string
}

// Default returns the configuration used for keys absent from a file.
func Default() Config {
	return Config{
		AirfoilInput:          "airfoil.dat",
		AirfoilFormat:         "xr",
		GoreCount:             4,
		StationCount:          250,
		SpacingPolicy:         "cosine",
		InterpolationMode:     "cubic",
		BunchingFactor:        3,
		TruncationFraction:    1,
		ShrinkageFactor:       1,
		Units:                 "mm",
		OutputScale:           1,
		PageSize:              "A0",
		OutputFile:            "gores.svg",
		GoresDrawn:            1,
		PageMargin:            10,
		CuttingClearance:      7.5,
		DrawBaseAirfoil:       true,
		DrawMargins:           true,
		DrawTextBox:           true,
		TextBoxWidth:          331,
		TextBoxHeight:         59,
		DrawingInfo:           []string{"Axisymmetric gore pattern", "Scale 1:1"},
		DrawAirfoilName:       true,
		NameFontSize:          20,
		DrawCenterline:        true,
		DrawLengthLines:       true,
		LengthLinesPitch:      100,
		ConstructionLineWidth: 0.1,
		SolidLineWidth:        0.5,
		LineColor:             "black",
	}
}

// ConfigError reports a missing, mistyped or invalid configuration value.
type ConfigError struct {
	Key   string
	Value interface{}
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return "config: " + e.Err.Error()
	}
	return fmt.Sprintf("config: %s=%v: %v", e.Key, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

type binding struct {
	key string
	dst interface{}
}

func (c *Config) bindings() []binding {
	return []binding{
		{KeyAirfoilInput, &c.AirfoilInput},
		{KeyAirfoilFormat, &c.AirfoilFormat},
		{KeyAirfoilName, &c.AirfoilName},
		{KeyEnvelopeLength, &c.EnvelopeLength},
		{KeyGoreCount, &c.GoreCount},
		{KeyStationCount, &c.StationCount},
		{KeySpacingPolicy, &c.SpacingPolicy},
		{KeyInterpolationMode, &c.InterpolationMode},
		{KeyBunchingFactor, &c.BunchingFactor},
		{KeyTruncationFraction, &c.TruncationFraction},
		{KeyShrinkageFactor, &c.ShrinkageFactor},
		{KeyMaterial, &c.Material},
		{KeyUnits, &c.Units},
		{KeyOutputScale, &c.OutputScale},
		{KeyPageSize, &c.PageSize},
		{KeyOutputFile, &c.OutputFile},
		{KeyDXFOutput, &c.DXFOutput},
		{KeySTLOutput, &c.STLOutput},
		{KeyPlotOutput, &c.PlotOutput},
		{KeyShadeOutput, &c.ShadeOutput},
		{KeyGoresDrawn, &c.GoresDrawn},
		{KeyPageMargin, &c.PageMargin},
		{KeyCuttingClearance, &c.CuttingClearance},
		{KeyDrawBaseAirfoil, &c.DrawBaseAirfoil},
		{KeyDrawMargins, &c.DrawMargins},
		{KeyDrawTextBox, &c.DrawTextBox},
		{KeyTextBoxWidth, &c.TextBoxWidth},
		{KeyTextBoxHeight, &c.TextBoxHeight},
		{KeyDrawingInfo, &c.DrawingInfo},
		{KeyDrawAirfoilName, &c.DrawAirfoilName},
		{KeyNameFontSize, &c.NameFontSize},
		{KeyDrawCenterline, &c.DrawCenterline},
		{KeyDrawLengthLines, &c.DrawLengthLines},
		{KeyLengthLinesPitch, &c.LengthLinesPitch},
		{KeyDrawStationLabels, &c.DrawStationLabels},
		{KeyConstructionLineWidth, &c.ConstructionLineWidth},
		{KeySolidLineWidth, &c.SolidLineWidth},
		{KeyLineColor, &c.LineColor},
	}
}

// Load reads the configuration file at path over Default and validates it.
// The file type is taken from the extension.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, &ConfigError{Err: fmt.Errorf("reading %s: %w", path, err)}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	c := Default()
	for _, b := range c.bindings() {
		if !v.IsSet(b.key) {
			continue
		}
		val := v.Get(b.key)
		if err := assign(b.dst, val); err != nil {
			return Config{}, &ConfigError{Key: b.key, Value: val, Err: err}
		}
	}
	if c.Material != "" && !v.IsSet(KeyShrinkageFactor) {
		fabric, err := matter.Lookup(c.Material)
		if err != nil {
			return Config{}, &ConfigError{Key: KeyMaterial, Value: c.Material, Err: err}
		}
		c.ShrinkageFactor = fabric.WidthFactor()
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WriteDefault writes the default configuration to path. The format is taken
// from the extension of path.
func WriteDefault(path string) error {
	v := viper.New()
	for key, val := range Default().Settings() {
		v.Set(key, val)
	}
	return v.WriteConfigAs(path)
}

// Settings returns the configuration as a key-value map.
func (c Config) Settings() map[string]interface{} {
	m := make(map[string]interface{})
	for _, b := range c.bindings() {
		switch d := b.dst.(type) {
		case *int:
			m[b.key] = *d
		case *float64:
			m[b.key] = *d
		case *string:
			m[b.key] = *d
		case *bool:
			m[b.key] = *d
		case *[]string:
			m[b.key] = append([]string(nil), *d...)
		}
	}
	return m
}

// Keys returns all recognized configuration keys in sorted order.
func Keys() []string {
	var c Config
	var keys []string
	for _, b := range c.bindings() {
		keys = append(keys, b.key)
	}
	sort.Strings(keys)
	return keys
}

func assign(dst, val interface{}) error {
	switch d := dst.(type) {
	case *int:
		switch n := val.(type) {
		case int:
			*d = n
		case int64:
			*d = int(n)
		case float64:
			if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
				return fmt.Errorf("want integer, got %g", n)
			}
			*d = int(n)
		default:
			return fmt.Errorf("want integer, got %T", val)
		}
	case *float64:
		switch n := val.(type) {
		case float64:
			*d = n
		case int:
			*d = float64(n)
		case int64:
			*d = float64(n)
		default:
			return fmt.Errorf("want number, got %T", val)
		}
	case *string:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("want string, got %T", val)
		}
		*d = s
	case *bool:
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("want boolean, got %T", val)
		}
		*d = b
	case *[]string:
		switch list := val.(type) {
		case []string:
			*d = append([]string(nil), list...)
		case []interface{}:
			out := make([]string, len(list))
			for i, item := range list {
				s, ok := item.(string)
				if !ok {
					return fmt.Errorf("want list of strings, item %d is %T", i, item)
				}
				out[i] = s
			}
			*d = out
		default:
			return fmt.Errorf("want list of strings, got %T", val)
		}
	default:
		panic(fmt.Sprintf("config: unsupported binding %T", dst))
	}
	return nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	positive := []struct {
		key string
		val float64
	}{
		{KeyBunchingFactor, c.BunchingFactor},
		{KeyOutputScale, c.OutputScale},
		{KeyNameFontSize, c.NameFontSize},
		{KeyLengthLinesPitch, c.LengthLinesPitch},
		{KeySolidLineWidth, c.SolidLineWidth},
		{KeyConstructionLineWidth, c.ConstructionLineWidth},
	}
	for _, p := range positive {
		if !(p.val > 0) || math.IsInf(p.val, 0) {
			return &ConfigError{Key: p.key, Value: p.val, Err: errors.New("must be positive")}
		}
	}
	nonNegative := []struct {
		key string
		val float64
	}{
		{KeyEnvelopeLength, c.EnvelopeLength},
		{KeyPageMargin, c.PageMargin},
		{KeyCuttingClearance, c.CuttingClearance},
		{KeyTextBoxWidth, c.TextBoxWidth},
		{KeyTextBoxHeight, c.TextBoxHeight},
	}
	for _, p := range nonNegative {
		if !(p.val >= 0) || math.IsInf(p.val, 0) {
			return &ConfigError{Key: p.key, Value: p.val, Err: errors.New("must not be negative")}
		}
	}
	switch {
	case c.GoreCount < 3:
		return &ConfigError{Key: KeyGoreCount, Value: c.GoreCount, Err: &gore.InsufficientGoreCountError{Gores: c.GoreCount}}
	case c.StationCount < 2:
		return &ConfigError{Key: KeyStationCount, Value: c.StationCount, Err: gore.ErrStationCount}
	case !(c.ShrinkageFactor > 0) || math.IsInf(c.ShrinkageFactor, 0):
		return &ConfigError{Key: KeyShrinkageFactor, Value: c.ShrinkageFactor, Err: &gore.InvalidFactorError{Name: "shrinkage factor", Value: c.ShrinkageFactor}}
	case !(c.TruncationFraction > 0 && c.TruncationFraction <= 1):
		return &ConfigError{Key: KeyTruncationFraction, Value: c.TruncationFraction, Err: errors.New("must be in (0, 1]")}
	case c.GoresDrawn < 0:
		return &ConfigError{Key: KeyGoresDrawn, Value: c.GoresDrawn, Err: errors.New("must not be negative")}
	case c.AirfoilInput == "":
		return &ConfigError{Key: KeyAirfoilInput, Value: c.AirfoilInput, Err: errors.New("required")}
	case c.OutputFile == "":
		return &ConfigError{Key: KeyOutputFile, Value: c.OutputFile, Err: errors.New("required")}
	}
	if _, err := gore.ParseSpacing(c.SpacingPolicy); err != nil {
		return &ConfigError{Key: KeySpacingPolicy, Value: c.SpacingPolicy, Err: err}
	}
	if _, err := gore.ParseInterpolation(c.InterpolationMode); err != nil {
		return &ConfigError{Key: KeyInterpolationMode, Value: c.InterpolationMode, Err: err}
	}
	if _, err := airfoil.ParseFormat(c.AirfoilFormat); err != nil {
		return &ConfigError{Key: KeyAirfoilFormat, Value: c.AirfoilFormat, Err: err}
	}
	if !validUnit(c.Units) {
		return &ConfigError{Key: KeyUnits, Value: c.Units, Err: fmt.Errorf("want one of %s", strings.Join(units, ", "))}
	}
	w, h, err := ParsePageSize(c.PageSize)
	if err != nil {
		return &ConfigError{Key: KeyPageSize, Value: c.PageSize, Err: err}
	}
	if 2*c.PageMargin >= math.Min(w, h) {
		return &ConfigError{Key: KeyPageMargin, Value: c.PageMargin, Err: errors.New("margins leave no drawing area")}
	}
	return nil
}

var units = []string{"mm", "cm", "in", "pt", "px"}

func validUnit(u string) bool {
	for _, v := range units {
		if u == v {
			return true
		}
	}
	return false
}

var isoSizes = map[string][2]float64{
	"A0": {841, 1189},
	"A1": {594, 841},
	"A2": {420, 594},
	"A3": {297, 420},
	"A4": {210, 297},
}

// ParsePageSize parses a page size written as "WIDTHxHEIGHT" in drawing units
// or as an ISO 216 name (A0 to A4) in millimetres.
func ParsePageSize(s string) (width, height float64, err error) {
	if sz, ok := isoSizes[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return sz[0], sz[1], nil
	}
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("page size %q: want WIDTHxHEIGHT or A0-A4", s)
	}
	width, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("page size %q: %w", s, err)
	}
	height, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("page size %q: %w", s, err)
	}
	if !(width > 0 && height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return 0, 0, fmt.Errorf("page size %q: dimensions must be positive", s)
	}
	return width, height, nil
}

// Parms returns the core pipeline parameters of a validated configuration.
func (c Config) Parms() (gore.Parms, error) {
	spacing, err := gore.ParseSpacing(c.SpacingPolicy)
	if err != nil {
		return gore.Parms{}, &ConfigError{Key: KeySpacingPolicy, Value: c.SpacingPolicy, Err: err}
	}
	mode, err := gore.ParseInterpolation(c.InterpolationMode)
	if err != nil {
		return gore.Parms{}, &ConfigError{Key: KeyInterpolationMode, Value: c.InterpolationMode, Err: err}
	}
	return gore.Parms{
		Sample: gore.SampleParms{
			Count:         c.StationCount,
			Spacing:       spacing,
			Interpolation: mode,
			Bunching:      c.BunchingFactor,
			Truncation:    c.TruncationFraction,
		},
		Gore: gore.GoreParms{
			Gores:     c.GoreCount,
			Shrinkage: c.ShrinkageFactor,
		},
	}, nil
}

// Format returns the airfoil file format of a validated configuration.
func (c Config) Format() airfoil.Format {
	f, err := airfoil.ParseFormat(c.AirfoilFormat)
	if err != nil {
		panic("config: Format called on unvalidated config: " + err.Error())
	}
	return f
}
