package domain

// ConfirmationRiskProfile holds the chain-analysis attributes shared by all risk assessments.
type ConfirmationRiskProfile struct {
	unconfirmedChainLength int
	hasRbfRisk             bool
}

// NewConfirmationRiskProfile creates a base risk profile.
func NewConfirmationRiskProfile(unconfirmedChainLength int, hasRbfRisk bool) ConfirmationRiskProfile {
	return ConfirmationRiskProfile{
		unconfirmedChainLength: unconfirmedChainLength,
		hasRbfRisk:             hasRbfRisk,
	}
}

// UnconfirmedChainLength is the number of unconfirmed ancestor transactions.
func (p ConfirmationRiskProfile) UnconfirmedChainLength() int {
	return p.unconfirmedChainLength
}

// HasRbfRisk reports whether replace-by-fee signaling was detected.
func (p ConfirmationRiskProfile) HasRbfRisk() bool {
	return p.hasRbfRisk
}

// ConfirmationRiskProfileLocal extends the base profile with the double-spend flag
// observed by the local wallet.
type ConfirmationRiskProfileLocal struct {
	ConfirmationRiskProfile
	isDoubleSpend bool
}

// NewConfirmationRiskProfileLocal stores the three attributes verbatim.
func NewConfirmationRiskProfileLocal(
	unconfirmedChainLength int,
	hasRbfRisk bool,
	isDoubleSpend bool,
) ConfirmationRiskProfileLocal {
	return ConfirmationRiskProfileLocal{
		ConfirmationRiskProfile: NewConfirmationRiskProfile(unconfirmedChainLength, hasRbfRisk),
		isDoubleSpend:           isDoubleSpend,
	}
}

// Base returns the embedded base profile.
func (p ConfirmationRiskProfileLocal) Base() ConfirmationRiskProfile {
	return p.ConfirmationRiskProfile
}

// IsDoubleSpend reports whether a conflicting spend of the same inputs was observed.
func (p ConfirmationRiskProfileLocal) IsDoubleSpend() bool {
	return p.isDoubleSpend
}
