package tap3ber

/*
tap3_fixture_test.go exercises the decoder and projector together over a
small, realistic-shaped TAP3 batch, using testify's require package for
the deep-tree assertions.
*/

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// berTag returns the identifier octet(s) for tag within class, using the
// high-tag-number form whenever tag does not fit in the low 5 bits.
func berTag(class Class, constructed bool, tag int) []byte {
	b := byte(class) << 6
	if constructed {
		b |= 0x20
	}
	if tag < 31 {
		return []byte{b | byte(tag)}
	}
	b |= 0x1F
	var cont []byte
	cont = append(cont, byte(tag&0x7F))
	tag >>= 7
	for tag > 0 {
		cont = append([]byte{byte(tag&0x7F) | 0x80}, cont...)
		tag >>= 7
	}
	return append([]byte{b}, cont...)
}

func berTLV(class Class, constructed bool, tag int, value []byte) []byte {
	out := berTag(class, constructed, tag)
	out = append(out, encodeShortLength(len(value))...)
	return append(out, value...)
}

func encodeShortLength(n int) []byte {
	if n < 128 {
		return []byte{byte(n)}
	}
	var bs []byte
	for n > 0 {
		bs = append([]byte{byte(n & 0xFF)}, bs...)
		n >>= 8
	}
	return append([]byte{0x80 | byte(len(bs))}, bs...)
}

func TestFixtureTransferBatch(t *testing.T) {
	msisdn := berTLV(ClassContextSpecific, false, 152, []byte{0x00, 0x91, 0x61, 0x00, 0x12})
	imei := berTLV(ClassContextSpecific, false, 128, []byte{0x35, 0x20, 0x94, 0x10, 0x12, 0x34, 0x5F})
	currency := berTLV(ClassContextSpecific, false, 210, []byte("EUR"))
	dataVolume := berTLV(ClassContextSpecific, false, 343, []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00})

	chargeableSubscriber := berTLV(ClassContextSpecific, true, 427, append(append([]byte{}, msisdn...), imei...))

	batchContent := append([]byte{}, chargeableSubscriber...)
	batchContent = append(batchContent, currency...)
	batchContent = append(batchContent, dataVolume...)

	batch := berTLV(ClassApplication, true, 1, batchContent)

	arena, root, err := ParseBER(batch)
	require.NoError(t, err)
	require.NotNil(t, arena)
	require.Len(t, root.Children, 1)

	named, err := ProjectTAP(root, 3, 11)
	require.NoError(t, err)
	require.Len(t, named.Children(), 1)

	top := named.Children()[0]
	require.Equal(t, "TransferBatch", top.Name())
	require.Len(t, top.Children(), 3)

	sub := top.Children()[0]
	require.Equal(t, "ChargeableSubscriber", sub.Name())
	require.Len(t, sub.Children(), 2)

	msisdnNode := sub.Children()[0]
	require.Equal(t, "Msisdn", msisdnNode.Name())
	scalar, ok := msisdnNode.Data()
	require.True(t, ok)
	require.Equal(t, ScalarInteger, scalar.Kind)
	require.Equal(t, int64(0x0091610012), scalar.Int)

	imeiNode := sub.Children()[1]
	require.Equal(t, "Imei", imeiNode.Name())
	scalar, ok = imeiNode.Data()
	require.True(t, ok)
	require.Equal(t, ScalarDigits, scalar.Kind)
	require.Equal(t, "3520941012345", scalar.Digits)

	currencyNode := top.Children()[1]
	require.Equal(t, "TapCurrency", currencyNode.Name())
	scalar, ok = currencyNode.Data()
	require.True(t, ok)
	require.Equal(t, ScalarText, scalar.Kind)
	require.Equal(t, "EUR", string(scalar.Text))

	volumeNode := top.Children()[2]
	require.Equal(t, "TotalDataVolume", volumeNode.Name())
	scalar, ok = volumeNode.Data()
	require.True(t, ok)
	require.Equal(t, ScalarInteger, scalar.Kind)
	require.Equal(t, int64(0x10000), scalar.Int)
}
