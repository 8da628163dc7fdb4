package spread

import (
	"testing"

	"github.com/iov-one/spread/coin"
	"github.com/iov-one/spread/errors"
)

type testMsg struct {
	value   string
	invalid bool
}

var _ Msg = (*testMsg)(nil)

func (m *testMsg) Marshal() ([]byte, error) { return []byte(m.value), nil }
func (m *testMsg) Unmarshal(b []byte) error { m.value = string(b); return nil }
func (m *testMsg) Path() string             { return "test/msg" }

func (m *testMsg) Validate() error {
	if m.invalid {
		return errors.Wrap(errors.ErrMsg, "marked invalid")
	}
	return nil
}

type testTx struct {
	msg   Msg
	funds coin.Coins
	err   error
}

var _ Tx = (*testTx)(nil)
var _ FundsTx = (*testTx)(nil)

func (tx *testTx) GetMsg() (Msg, error)     { return tx.msg, tx.err }
func (tx *testTx) GetFunds() coin.Coins     { return tx.funds }
func (tx *testTx) Marshal() ([]byte, error) { return nil, errors.ErrHuman }
func (tx *testTx) Unmarshal([]byte) error   { return errors.ErrHuman }

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		dest    Msg
		wantErr *errors.Error
	}{
		"message is loaded into the destination": {
			tx:   &testTx{msg: &testMsg{value: "foo"}},
			dest: &testMsg{},
		},
		"invalid message is rejected": {
			tx:      &testTx{msg: &testMsg{invalid: true}},
			dest:    &testMsg{},
			wantErr: errors.ErrMsg,
		},
		"transaction failure is propagated": {
			tx:      &testTx{err: errors.ErrState},
			dest:    &testMsg{},
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := LoadMsg(tc.tx, tc.dest)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if got := tc.dest.(*testMsg).value; got != "foo" {
				t.Fatalf("unexpected value: %q", got)
			}
		})
	}
}

func TestAttachedFunds(t *testing.T) {
	funds := coin.Coins{coin.NewCoinp(100, "ATOM")}
	tx := &testTx{msg: &testMsg{}, funds: funds}
	if got := AttachedFunds(tx); !got.Equals(funds) {
		t.Fatalf("unexpected funds: %s", got)
	}
}

func TestGetPath(t *testing.T) {
	if got := GetPath(&testTx{msg: &testMsg{}}); got != "test/msg" {
		t.Fatalf("unexpected path: %q", got)
	}
	if got := GetPath(&testTx{err: errors.ErrHuman}); got != "(missing)" {
		t.Fatalf("unexpected path: %q", got)
	}
}
