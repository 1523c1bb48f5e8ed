package geocoord

import "github.com/liyq0307/3dtiles/geoid"

// GeoidConfig describes which geoid model to apply for orthometric↔ellipsoidal height
// correction, and where its data files live (spec.md §3).
type GeoidConfig struct {
	Enabled  bool
	Model    geoid.Model
	DataPath string
}
