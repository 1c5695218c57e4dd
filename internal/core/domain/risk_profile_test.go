package domain_test

import (
	"testing"

	"spv_wallet_summary/internal/core/domain"
)

func TestNewConfirmationRiskProfileLocal(t *testing.T) {
	tests := []struct {
		name        string
		chainLength int
		rbf         bool
		doubleSpend bool
	}{
		{name: "No risk", chainLength: 0},
		{name: "RBF only", chainLength: 1, rbf: true},
		{name: "Double spend only", chainLength: 2, doubleSpend: true},
		{name: "Everything", chainLength: 7, rbf: true, doubleSpend: true},
		{name: "Negative chain length kept verbatim", chainLength: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.NewConfirmationRiskProfileLocal(tt.chainLength, tt.rbf, tt.doubleSpend)
			if p.UnconfirmedChainLength() != tt.chainLength {
				t.Errorf("UnconfirmedChainLength() got = %v, want %v", p.UnconfirmedChainLength(), tt.chainLength)
			}
			if p.HasRbfRisk() != tt.rbf {
				t.Errorf("HasRbfRisk() got = %v, want %v", p.HasRbfRisk(), tt.rbf)
			}
			if p.IsDoubleSpend() != tt.doubleSpend {
				t.Errorf("IsDoubleSpend() got = %v, want %v", p.IsDoubleSpend(), tt.doubleSpend)
			}
			if p.Base() != domain.NewConfirmationRiskProfile(tt.chainLength, tt.rbf) {
				t.Errorf("Base() got = %+v", p.Base())
			}
		})
	}
}
