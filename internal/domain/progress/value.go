package progress

// Value selects the primary or secondary quantity of an Active
type Value string

const (
	ValuePrimary         Value = "primary"
	ValueSecondary       Value = "secondary"
	ValuePreferPrimary   Value = "prefer_primary"
	ValuePreferSecondary Value = "prefer_secondary"
)

// AllValues lists every selector
var AllValues = [...]Value{
	ValuePrimary,
	ValueSecondary,
	ValuePreferPrimary,
	ValuePreferSecondary,
}

// Valid reports whether v is a known selector
func (v Value) Valid() bool {
	for _, known := range AllValues {
		if v == known {
			return true
		}
	}
	return false
}
