package admins

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/adminlist/errors"
)

// schemaVersion is written with every persisted model of this package.
const schemaVersion = 1

// metadataWire describes the shape of the persisted data.
type metadataWire struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3"`
}

func (m *metadataWire) Reset()         { *m = metadataWire{} }
func (m *metadataWire) String() string { return proto.CompactTextString(m) }
func (*metadataWire) ProtoMessage()    {}

// adminListWire is the protobuf representation of AdminList.
type adminListWire struct {
	Metadata *metadataWire `protobuf:"bytes,1,opt,name=metadata"`
	Admins   []string      `protobuf:"bytes,2,rep,name=admins"`
}

func (m *adminListWire) Reset()         { *m = adminListWire{} }
func (m *adminListWire) String() string { return proto.CompactTextString(m) }
func (*adminListWire) ProtoMessage()    {}

// configurationWire is the protobuf representation of Configuration.
type configurationWire struct {
	Metadata      *metadataWire `protobuf:"bytes,1,opt,name=metadata"`
	DonationDenom string        `protobuf:"bytes,2,opt,name=donation_denom,json=donationDenom,proto3"`
}

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

func newMetadata() *metadataWire {
	return &metadataWire{Schema: schemaVersion}
}

func checkMetadata(m *metadataWire) error {
	if m == nil {
		return errors.Wrap(errors.ErrSchema, "missing metadata")
	}
	if m.Schema != schemaVersion {
		return errors.Wrapf(errors.ErrSchema, "unsupported schema %d", m.Schema)
	}
	return nil
}
