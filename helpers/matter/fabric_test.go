package matter

import "testing"

func TestLookup(t *testing.T) {
	for _, name := range []string{"mylar", "Ripstop", "TPU"} {
		f, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		k := f.WidthFactor()
		if k <= 0 || k > 1 {
			t.Errorf("%s width factor %g not in (0, 1]", name, k)
		}
	}
	if _, err := Lookup("cotton"); err == nil {
		t.Error("expected error for unknown fabric")
	}
}

func TestWidthFactorOrdering(t *testing.T) {
	// Stretchier fabrics must be cut narrower.
	if !(TPU.WidthFactor() < Ripstop.WidthFactor() && Ripstop.WidthFactor() < Mylar.WidthFactor()) {
		t.Errorf("width factors not ordered by stretch: tpu=%g ripstop=%g mylar=%g",
			TPU.WidthFactor(), Ripstop.WidthFactor(), Mylar.WidthFactor())
	}
}
