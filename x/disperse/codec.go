package disperse

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/spread"
	"github.com/iov-one/spread/coin"
)

// The serialization of all messages is maintained by hand. There is
// only one schema, so the protobuf field numbers below must never
// change.

// DisperseMsg splits the funds attached to the call between the
// given accounts, each receiving the amount listed at its index.
// The denomination is taken from the attached funds.
type DisperseMsg struct {
	Accounts []spread.Address `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
	Amounts  []int64          `protobuf:"varint,2,rep,packed,name=amounts,proto3" json:"amounts,omitempty"`
}

var _ proto.Message = (*DisperseMsg)(nil)

func (m *DisperseMsg) Reset()         { *m = DisperseMsg{} }
func (m *DisperseMsg) String() string { return proto.CompactTextString(m) }
func (m *DisperseMsg) ProtoMessage()  {}

func (m *DisperseMsg) Marshal() ([]byte, error) {
	return proto.Marshal(m)
}

func (m *DisperseMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, m)
}

// DisperseSameValueMsg splits the funds attached to the call between
// the given accounts, each receiving the same amount.
type DisperseSameValueMsg struct {
	Accounts []spread.Address `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
	Amount   int64            `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

var _ proto.Message = (*DisperseSameValueMsg)(nil)

func (m *DisperseSameValueMsg) Reset()         { *m = DisperseSameValueMsg{} }
func (m *DisperseSameValueMsg) String() string { return proto.CompactTextString(m) }
func (m *DisperseSameValueMsg) ProtoMessage()  {}

func (m *DisperseSameValueMsg) Marshal() ([]byte, error) {
	return proto.Marshal(m)
}

func (m *DisperseSameValueMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, m)
}

// WithdrawFundsMsg moves funds held in the contract custody to the
// given accounts. Each amount carries its own ticker. Only the admin
// may execute this.
type WithdrawFundsMsg struct {
	Accounts []spread.Address `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
	Amounts  []*coin.Coin     `protobuf:"bytes,2,rep,name=amounts,proto3" json:"amounts,omitempty"`
}

var _ proto.Message = (*WithdrawFundsMsg)(nil)

func (m *WithdrawFundsMsg) Reset()         { *m = WithdrawFundsMsg{} }
func (m *WithdrawFundsMsg) String() string { return proto.CompactTextString(m) }
func (m *WithdrawFundsMsg) ProtoMessage()  {}

func (m *WithdrawFundsMsg) Marshal() ([]byte, error) {
	return proto.Marshal(m)
}

func (m *WithdrawFundsMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, m)
}

// UpdateAdminMsg hands the admin privilege over to another account.
// Only the current admin may execute this.
type UpdateAdminMsg struct {
	NewAdmin spread.Address `protobuf:"bytes,1,opt,name=new_admin,json=newAdmin,proto3" json:"new_admin,omitempty"`
}

var _ proto.Message = (*UpdateAdminMsg)(nil)

func (m *UpdateAdminMsg) Reset()         { *m = UpdateAdminMsg{} }
func (m *UpdateAdminMsg) String() string { return proto.CompactTextString(m) }
func (m *UpdateAdminMsg) ProtoMessage()  {}

func (m *UpdateAdminMsg) Marshal() ([]byte, error) {
	return proto.Marshal(m)
}

func (m *UpdateAdminMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, m)
}

// Configuration is the admin record. It is persisted as the gconf
// singleton of this package and holds the only identity allowed to
// run privileged operations.
type Configuration struct {
	Admin spread.Address `protobuf:"bytes,1,opt,name=admin,proto3" json:"admin,omitempty"`
}

var _ proto.Message = (*Configuration)(nil)

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (c *Configuration) ProtoMessage()  {}

func (c *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal(c)
}

func (c *Configuration) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, c)
}
