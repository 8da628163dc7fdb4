package coin

import (
	proto "github.com/gogo/protobuf/proto"
)

// Coin is a single amount of a single currency. The amount is an integer
// count of the currency's smallest unit.
//
// The serialization is maintained by hand. There is only one schema and
// no migrations, so the protobuf field numbers below must never change.
type Coin struct {
	// Amount of the currency's smallest unit.
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	// Ticker is the currency code.
	Ticker string `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

var _ proto.Message = (*Coin)(nil)

func (c *Coin) Reset() { *c = Coin{} }

func (*Coin) ProtoMessage() {}

func (c *Coin) Marshal() ([]byte, error) {
	return proto.Marshal(c)
}

func (c *Coin) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, c)
}
