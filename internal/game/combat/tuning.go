package combat

// Tuning holds the combat balance constants. Both knobs are exposed through
// configuration; a rebalance is a config change, not a code change.
type Tuning struct {
	// DefenseK is the diminishing-returns constant in the damage reduction
	// curve reduction = defense / (defense + DefenseK). With K=25, 25 defense
	// halves incoming damage and further stacking keeps paying less.
	DefenseK float64
	// BlockReduction is the flat fraction of damage removed while the
	// defender is blocking, applied after the defense curve.
	BlockReduction float64
}

// DefaultTuning returns the shipped balance constants: K=25, block 30%.
func DefaultTuning() Tuning {
	return Tuning{DefenseK: 25, BlockReduction: 0.30}
}

// DamageReduction returns the fractional damage reduction for the given
// defense stat under the diminishing-returns curve.
//
// Precondition: defense >= 0; t.DefenseK > 0.
// Postcondition: Returns a value in [0, 1).
func (t Tuning) DamageReduction(defense int) float64 {
	d := float64(defense)
	if d < 0 {
		d = 0
	}
	return d / (d + t.DefenseK)
}
