package cash

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/spread/coin"
)

// Set is the value persisted for every wallet. It keeps a set of
// coins, at most one per ticker.
type Set struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

var _ proto.Message = (*Set)(nil)

func (s *Set) Reset()         { *s = Set{} }
func (s *Set) String() string { return proto.CompactTextString(s) }
func (s *Set) ProtoMessage()  {}

func (s *Set) GetCoins() []*coin.Coin {
	if s != nil {
		return s.Coins
	}
	return nil
}

func (s *Set) Marshal() ([]byte, error) {
	return proto.Marshal(s)
}

func (s *Set) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, s)
}

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	return coin.Coins(s.GetCoins()).Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() *Set {
	return &Set{
		Coins: coin.Coins(s.GetCoins()).Clone(),
	}
}
