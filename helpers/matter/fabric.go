package matter

import (
	"fmt"
	"sort"
	"strings"
)

var (
	// Mylar (biaxially oriented PET film) barely creeps under envelope pressure.
	Mylar = Fabric{Name: "mylar", stretch: 0.3e-2} // 0.3% stretch
	// Ripstop is a polyurethane coated ripstop nylon. Stretches along the bias.
	Ripstop = Fabric{Name: "ripstop", stretch: 1.5e-2}
	// TPU is thermoplastic polyurethane film, common for small indoor blimps.
	TPU = Fabric{Name: "tpu", stretch: 2.5e-2}
)

var catalogue = map[string]Fabric{
	Mylar.Name:   Mylar,
	Ripstop.Name: Ripstop,
	TPU.Name:     TPU,
}

// Fabric is an envelope material that stretches once the hull is pressurized.
type Fabric struct {
	Name string
	// stretch is the circumferential strain of the material at working pressure.
	stretch float64
}

// Stretch returns the circumferential strain of the fabric at working pressure.
func (f Fabric) Stretch() float64 { return f.stretch }

// WidthFactor returns the factor gore widths must be multiplied by so that
// the stretched panel matches the design width.
func (f Fabric) WidthFactor() float64 {
	return 1 / (1 + f.stretch)
}

// Lookup returns the catalogued fabric with the given case-insensitive name.
func Lookup(name string) (Fabric, error) {
	f, ok := catalogue[strings.ToLower(name)]
	if !ok {
		return Fabric{}, fmt.Errorf("unknown fabric %q, want one of %s", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names returns the sorted names of catalogued fabrics.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
