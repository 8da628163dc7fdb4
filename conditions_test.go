package spread

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/spread/errors"
)

func TestAddressValidate(t *testing.T) {
	cases := map[string]struct {
		addr    Address
		wantErr *errors.Error
	}{
		"valid address": {
			addr: make(Address, AddressLength),
		},
		"empty address": {
			addr:    nil,
			wantErr: errors.ErrEmpty,
		},
		"too short": {
			addr:    make(Address, AddressLength-1),
			wantErr: errors.ErrInput,
		},
		"too long": {
			addr:    make(Address, AddressLength+1),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.addr.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestConditionAddress(t *testing.T) {
	cond := NewCondition("spread", "contract", []byte("disperse"))
	if err := cond.Validate(); err != nil {
		t.Fatalf("invalid condition: %+v", err)
	}

	addr := cond.Address()
	if err := addr.Validate(); err != nil {
		t.Fatalf("invalid address: %+v", err)
	}

	// Address derivation must be deterministic.
	again := NewCondition("spread", "contract", []byte("disperse")).Address()
	if !addr.Equals(again) {
		t.Fatal("address derivation is not deterministic")
	}

	other := NewCondition("spread", "contract", []byte("other")).Address()
	if addr.Equals(other) {
		t.Fatal("different conditions must produce different addresses")
	}
}

func TestConditionParse(t *testing.T) {
	ext, typ, data, err := NewCondition("sigs", "ed25519", []byte{1, 2, 3}).Parse()
	if err != nil {
		t.Fatalf("cannot parse: %+v", err)
	}
	if ext != "sigs" || typ != "ed25519" || len(data) != 3 {
		t.Fatalf("unexpected chunks: %s %s %v", ext, typ, data)
	}

	if _, _, _, err := Condition("garbage").Parse(); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestAddressJSON(t *testing.T) {
	addr := NewCondition("spread", "contract", []byte("disperse")).Address()

	raw, err := json.Marshal(addr)
	if err != nil {
		t.Fatalf("cannot marshal: %s", err)
	}

	var got Address
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	if !addr.Equals(got) {
		t.Fatalf("unexpected address: %s", got)
	}
}

func TestParseAddress(t *testing.T) {
	addr := NewAddress([]byte("some-data"))

	got, err := ParseAddress(addr.String())
	if err != nil {
		t.Fatalf("cannot parse: %+v", err)
	}
	if !addr.Equals(got) {
		t.Fatalf("unexpected address: %s", got)
	}

	if _, err := ParseAddress("not-hex"); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}
