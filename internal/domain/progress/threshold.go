package progress

// AmountType selects which scalar a threshold compares
type AmountType string

const (
	AmountIntensity         AmountType = "intensity"
	AmountDuration          AmountType = "duration"
	AmountSecondaryDuration AmountType = "secondary_duration"
	AmountPercent           AmountType = "percent"
	AmountSecondaryPercent  AmountType = "secondary_percent"
)

// AllAmountTypes lists every amount type
var AllAmountTypes = [...]AmountType{
	AmountIntensity,
	AmountDuration,
	AmountSecondaryDuration,
	AmountPercent,
	AmountSecondaryPercent,
}

// Amount extracts the scalar from an active. Timed durations are in seconds,
// resource durations are the raw level and percents run from 0 to 100.
func (t AmountType) Amount(a Active, now uint32) (float32, bool) {
	switch t {
	case AmountIntensity:
		return float32(a.Intensity()), true
	case AmountDuration:
		return duration(a, ValuePrimary, now)
	case AmountSecondaryDuration:
		return duration(a, ValueSecondary, now)
	case AmountPercent:
		fill, ok := a.Fill(ValuePrimary, now)
		return fill * 100, ok
	case AmountSecondaryPercent:
		fill, ok := a.Fill(ValueSecondary, now)
		return fill * 100, ok
	}
	return 0, false
}

func duration(a Active, value Value, now uint32) (float32, bool) {
	current, ok := a.CurrentAt(value, now)
	if !ok {
		return 0, false
	}
	if a.IsTimed() {
		return float32(current) / 1000, true
	}
	return float32(current), true
}

// ThresholdKind names the comparison
type ThresholdKind string

const (
	ThresholdAlways  ThresholdKind = "always"
	ThresholdPresent ThresholdKind = "present"
	ThresholdMissing ThresholdKind = "missing"
	ThresholdBelow   ThresholdKind = "below"
	ThresholdAbove   ThresholdKind = "above"
	ThresholdExact   ThresholdKind = "exact"
	ThresholdBetween ThresholdKind = "between"
)

// AllThresholdKinds lists every comparison
var AllThresholdKinds = [...]ThresholdKind{
	ThresholdAlways,
	ThresholdPresent,
	ThresholdMissing,
	ThresholdBelow,
	ThresholdAbove,
	ThresholdExact,
	ThresholdBetween,
}

// ThresholdType is the comparison plus its operands.
// Value is used by below/above/exact, Min and Max by between.
type ThresholdType struct {
	Kind  ThresholdKind
	Value float32
	Min   float32
	Max   float32
}

func AlwaysMet() ThresholdType      { return ThresholdType{Kind: ThresholdAlways} }
func Present() ThresholdType        { return ThresholdType{Kind: ThresholdPresent} }
func Missing() ThresholdType        { return ThresholdType{Kind: ThresholdMissing} }
func Below(v float32) ThresholdType { return ThresholdType{Kind: ThresholdBelow, Value: v} }
func Above(v float32) ThresholdType { return ThresholdType{Kind: ThresholdAbove, Value: v} }
func Exact(v float32) ThresholdType { return ThresholdType{Kind: ThresholdExact, Value: v} }

// Between is inclusive on both ends
func Between(min, max float32) ThresholdType {
	return ThresholdType{Kind: ThresholdBetween, Min: min, Max: max}
}

// NeedsAmount reports whether the kind compares a scalar
func (k ThresholdKind) NeedsAmount() bool {
	switch k {
	case ThresholdBelow, ThresholdAbove, ThresholdExact, ThresholdBetween:
		return true
	}
	return false
}

// Threshold decides whether an active meets a condition
type Threshold struct {
	ThresholdType ThresholdType `json:"threshold_type"`
	AmountType    AmountType    `json:"amount_type"`
}

// DefaultThreshold shows a node while its source is present
func DefaultThreshold() Threshold {
	return Threshold{ThresholdType: Present(), AmountType: AmountIntensity}
}

// IsMet evaluates the threshold. A nil active only satisfies always and missing.
func (t Threshold) IsMet(active *Active, now uint32) bool {
	switch t.ThresholdType.Kind {
	case ThresholdAlways:
		return true
	case ThresholdPresent:
		return active != nil && active.Intensity() > 0
	case ThresholdMissing:
		return active == nil || active.Intensity() == 0
	}

	if active == nil {
		return false
	}
	amount, ok := t.AmountType.Amount(*active, now)
	if !ok {
		return false
	}
	return t.ThresholdType.Compare(amount)
}

// Compare applies a scalar comparison; presence kinds never match a bare amount
func (tt ThresholdType) Compare(amount float32) bool {
	switch tt.Kind {
	case ThresholdBelow:
		return amount < tt.Value
	case ThresholdAbove:
		return amount > tt.Value
	case ThresholdExact:
		return amount == tt.Value
	case ThresholdBetween:
		return tt.Min <= amount && amount <= tt.Max
	case ThresholdAlways:
		return true
	}
	return false
}
