package domain_test

import (
	"errors"
	"testing"

	"github.com/bsv-blockchain/go-sdk/script"

	"spv_wallet_summary/internal/core/domain"
)

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     bool
		wantVal     string
		wantType    domain.AddressType
		wantTestnet bool
	}{
		{
			name:     "Valid mainnet address",
			input:    "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			wantErr:  false,
			wantVal:  "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			wantType: domain.AddressTypeP2PKH,
		},
		{
			name:     "Address with whitespace (expect trimmed)",
			input:    "  1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa  ",
			wantErr:  false,
			wantVal:  "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			wantType: domain.AddressTypeP2PKH,
		},
		{
			name:     "Valid mainnet P2SH address",
			input:    "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",
			wantErr:  false,
			wantVal:  "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",
			wantType: domain.AddressTypeP2SH,
		},
		{
			name:        "Valid testnet P2PKH address",
			input:       "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn",
			wantErr:     false,
			wantVal:     "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn",
			wantType:    domain.AddressTypeP2PKH,
			wantTestnet: true,
		},
		{
			name:        "Valid testnet P2SH address",
			input:       "2MzQwSSnBHWHqSAqtTVQ6v47XtaisrJa1Vc",
			wantErr:     false,
			wantVal:     "2MzQwSSnBHWHqSAqtTVQ6v47XtaisrJa1Vc",
			wantType:    domain.AddressTypeP2SH,
			wantTestnet: true,
		},
		{
			name:    "Bad checksum (last character changed)",
			input:   "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN3",
			wantErr: true,
		},
		{
			name:    "Unsupported version byte",
			input:   "LKDxGDJq5fF4FohAB8zJH24mDDNHDNtqsE",
			wantErr: true,
		},
		{
			name:    "Truncated address",
			input:   "1A1zP1eP5QGefi2DMPTfTL5SLmv7Div",
			wantErr: true,
		},
		{
			name:    "Invalid base58 characters",
			input:   "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl",
			wantErr: true,
		},
		{
			name:    "Empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewAddress(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAddress() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidAddressFormat) {
					t.Errorf("NewAddress() error = %v, want ErrInvalidAddressFormat", err)
				}
				return
			}
			if got.String() != tt.wantVal {
				t.Errorf("NewAddress() got = %v, want %v", got.String(), tt.wantVal)
			}
			if got.Type() != tt.wantType {
				t.Errorf("Type() got = %v, want %v", got.Type(), tt.wantType)
			}
			if got.IsTestnet() != tt.wantTestnet {
				t.Errorf("IsTestnet() got = %v, want %v", got.IsTestnet(), tt.wantTestnet)
			}
			if len(got.Hash160()) != 20 {
				t.Errorf("Hash160() length = %d, want 20", len(got.Hash160()))
			}
		})
	}
}

func TestAddressFromScript(t *testing.T) {
	pkh := make([]byte, 20)
	pkh[19] = 0x01
	raw, err := script.NewAddressFromPublicKeyHash(pkh, true)
	if err != nil {
		t.Fatalf("NewAddressFromPublicKeyHash() error = %v", err)
	}

	addr, err := domain.AddressFromScript(raw)
	if err != nil {
		t.Fatalf("AddressFromScript() error = %v", err)
	}
	if addr.IsZero() {
		t.Fatal("AddressFromScript() returned zero address")
	}
	if got := addr.Hash160(); got[19] != 0x01 {
		t.Errorf("Hash160() = %x, want trailing 0x01", got)
	}

	parsed, err := domain.NewAddress(addr.String())
	if err != nil {
		t.Fatalf("NewAddress(%q) error = %v", addr.String(), err)
	}
	if !parsed.Equals(addr) {
		t.Errorf("round trip mismatch: %s != %s", parsed, addr)
	}

	if _, err := domain.AddressFromScript(nil); !errors.Is(err, domain.ErrInvalidAddressFormat) {
		t.Errorf("AddressFromScript(nil) error = %v, want ErrInvalidAddressFormat", err)
	}

	var zero domain.Address
	if !zero.IsZero() || zero.String() != "" || zero.Type() != 0 {
		t.Errorf("zero Address should be empty, got %q", zero.String())
	}
}
