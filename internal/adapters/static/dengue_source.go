package static

import "context"

// DengueAlert is the bundled cluster alert served until a live feed exists.
const DengueAlert = "Dengue Alert Level: **ORANGE**. There are **12 active clusters** in the East and " +
	"**8 active clusters** in the Central region (e.g., Geylang, Aljunied, Bishan). " +
	"Total 20 active clusters nationwide. Stay vigilant."

// DengueSource implements ports.DengueSource with a fixed alert.
type DengueSource struct{}

func NewDengueSource() *DengueSource {
	return &DengueSource{}
}

// CurrentAlert ignores the query and returns the bundled alert.
func (d *DengueSource) CurrentAlert(_ context.Context, _ string) (string, error) {
	return DengueAlert, nil
}
