package bank

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/adminlist/coin"
)

// coinWire is the protobuf representation of coin.Coin.
type coinWire struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3"`
}

func (m *coinWire) Reset()         { *m = coinWire{} }
func (m *coinWire) String() string { return proto.CompactTextString(m) }
func (*coinWire) ProtoMessage()    {}

// balanceWire is the protobuf representation of Balance.
type balanceWire struct {
	Coins []*coinWire `protobuf:"bytes,1,rep,name=coins"`
}

func (m *balanceWire) Reset()         { *m = balanceWire{} }
func (m *balanceWire) String() string { return proto.CompactTextString(m) }
func (*balanceWire) ProtoMessage()    {}

func encodeCoins(cs coin.Coins) []*coinWire {
	if len(cs) == 0 {
		return nil
	}
	res := make([]*coinWire, len(cs))
	for i, c := range cs {
		res[i] = &coinWire{Denom: c.Denom, Amount: c.Amount}
	}
	return res
}

func decodeCoins(ws []*coinWire) coin.Coins {
	if len(ws) == 0 {
		return nil
	}
	res := make(coin.Coins, len(ws))
	for i, w := range ws {
		res[i] = coin.NewCoin(w.Denom, w.Amount)
	}
	return res
}
