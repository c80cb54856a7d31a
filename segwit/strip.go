// Copyright (c) 2026 The Monetarium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit

import "fmt"

const (
	// versionLen is the width of the fixed transaction version field.
	versionLen = 4

	// markerFlagLen is the combined width of the segwit marker and flag
	// bytes that follow the version in the witness serialization.
	markerFlagLen = 2

	// lockTimeLen is the width of the fixed locktime field that ends
	// every serialization.
	lockTimeLen = 4

	// outPointLen is the width of the previous outpoint that starts each
	// input: a 32 byte transaction hash plus a 4 byte output index.
	outPointLen = 36

	// sequenceLen is the width of the sequence field that ends each input.
	sequenceLen = 4

	// valueLen is the width of the amount field that starts each output.
	valueLen = 8

	// witnessMarker and witnessFlag are the byte values at offsets 4 and
	// 5 that distinguish the witness serialization from the legacy one.
	// A legacy transaction can never have witnessMarker there since that
	// would mean a zero input count.
	witnessMarker = 0x00
	witnessFlag   = 0x01
)

// sectionDesc describes the fixed-width fields surrounding the single
// length-prefixed payload of each record in a counted section, which is
// all the walk needs to skip a record without interpreting it.
type sectionDesc struct {
	name      string
	prefixLen int
	suffixLen int
}

var (
	// txInSection describes a transaction input: outpoint, signature
	// script, sequence.
	txInSection = sectionDesc{name: "input", prefixLen: outPointLen,
		suffixLen: sequenceLen}

	// txOutSection describes a transaction output: value, public key
	// script.
	txOutSection = sectionDesc{name: "output", prefixLen: valueLen}
)

// IsWitnessSerialization returns whether the passed serialized transaction
// carries the segwit marker and flag bytes.  It returns false for inputs
// too short to contain them.
func IsWitnessSerialization(serializedTx []byte) bool {
	return len(serializedTx) >= versionLen+markerFlagLen &&
		serializedTx[versionLen] == witnessMarker &&
		serializedTx[versionLen+1] == witnessFlag
}

// skipFixed advances offset past a fixed-width field, returning an error
// with kind ErrOutOfBounds when the field extends past the end of buf.
func skipFixed(buf []byte, offset, width int, field string) (int, error) {
	if width > len(buf)-offset {
		str := fmt.Sprintf("%d byte %s at offset %d exceeds buffer "+
			"length %d", width, field, offset, len(buf))
		return 0, txError(ErrOutOfBounds, str)
	}
	return offset + width, nil
}

// skipVarBytes advances offset past a length-prefixed variable field by
// reading its varint length and then the announced number of payload
// bytes.
func skipVarBytes(buf []byte, offset int, field string) (int, error) {
	payloadLen, width, err := ReadVarInt(buf, offset)
	if err != nil {
		return 0, err
	}
	offset += width

	if payloadLen > uint64(len(buf)-offset) {
		str := fmt.Sprintf("%d byte %s at offset %d exceeds buffer "+
			"length %d", payloadLen, field, offset, len(buf))
		return 0, txError(ErrOutOfBounds, str)
	}
	return offset + int(payloadLen), nil
}

// walkSection walks one counted section of a serialized transaction.  The
// passed offset must be the first byte of the section's count varint, and
// the returned offset is the first byte after the section's final record,
// so the pair delimits the exact byte range the section occupies.  The
// record count is returned for use by the caller.
func walkSection(buf []byte, offset int, desc sectionDesc) (int, uint64, error) {
	count, width, err := ReadVarInt(buf, offset)
	if err != nil {
		return 0, 0, err
	}
	offset += width

	for i := uint64(0); i < count; i++ {
		offset, err = skipFixed(buf, offset, desc.prefixLen,
			desc.name+" prefix")
		if err != nil {
			return 0, 0, err
		}
		offset, err = skipVarBytes(buf, offset, desc.name+" script")
		if err != nil {
			return 0, 0, err
		}
		offset, err = skipFixed(buf, offset, desc.suffixLen,
			desc.name+" suffix")
		if err != nil {
			return 0, 0, err
		}
	}
	return offset, count, nil
}

// skipWitness advances offset past the witness section, which consists of
// one stack per transaction input: an item count varint followed by that
// many length-prefixed items.  The item bytes are never interpreted.
func skipWitness(buf []byte, offset int, numInputs uint64) (int, error) {
	for i := uint64(0); i < numInputs; i++ {
		itemCount, width, err := ReadVarInt(buf, offset)
		if err != nil {
			return 0, err
		}
		offset += width

		for j := uint64(0); j < itemCount; j++ {
			offset, err = skipVarBytes(buf, offset, "witness item")
			if err != nil {
				return 0, err
			}
		}
	}
	return offset, nil
}

// StripWitness rewrites a serialized bitcoin transaction into the legacy
// serialization that the transaction id is computed over.  A transaction
// without the segwit marker and flag bytes is already in that form and is
// returned unchanged without further validation.  Otherwise the result is
// the version, the input section, the output section, and the locktime
// with the marker, flag, and witness section elided; every output byte is
// present in the input at the same relative position within its section.
//
// The input is never mutated and no partial result is ever returned: any
// field that would read past the end of the input fails the whole call
// with an error of kind ErrOutOfBounds, and inputs shorter than the six
// bytes needed to classify them fail with kind ErrInvalidTx.
func StripWitness(serializedTx []byte) ([]byte, error) {
	if len(serializedTx) < versionLen+markerFlagLen {
		str := fmt.Sprintf("serialized transaction of %d bytes is too "+
			"short to contain a version and segwit marker",
			len(serializedTx))
		return nil, txError(ErrInvalidTx, str)
	}
	if !IsWitnessSerialization(serializedTx) {
		log.Tracef("no segwit marker at offset %d, returning %d bytes "+
			"unchanged", versionLen, len(serializedTx))
		return serializedTx, nil
	}

	offset := versionLen + markerFlagLen

	// Both section ranges include their own count varint.
	inStart := offset
	offset, numInputs, err := walkSection(serializedTx, offset, txInSection)
	if err != nil {
		return nil, err
	}
	inEnd := offset

	outStart := offset
	offset, numOutputs, err := walkSection(serializedTx, offset, txOutSection)
	if err != nil {
		return nil, err
	}
	outEnd := offset

	// The witness bytes are dropped rather than copied, but walking them
	// pins down exactly where the section ends so that a truncated or
	// padded serialization cannot slip through the end-anchored locktime
	// read below.
	witnessStart := offset
	offset, err = skipWitness(serializedTx, offset, numInputs)
	if err != nil {
		return nil, err
	}
	if offset+lockTimeLen != len(serializedTx) {
		str := fmt.Sprintf("witness section ending at offset %d does "+
			"not leave exactly %d locktime bytes in a %d byte "+
			"transaction", offset, lockTimeLen, len(serializedTx))
		return nil, txError(ErrOutOfBounds, str)
	}

	log.Debugf("stripping witness serialization: %d inputs (%d bytes), "+
		"%d outputs (%d bytes), %d witness bytes", numInputs,
		inEnd-inStart, numOutputs, outEnd-outStart, offset-witnessStart)

	stripped := make([]byte, 0, versionLen+(inEnd-inStart)+
		(outEnd-outStart)+lockTimeLen)
	stripped = append(stripped, serializedTx[:versionLen]...)
	stripped = append(stripped, serializedTx[inStart:inEnd]...)
	stripped = append(stripped, serializedTx[outStart:outEnd]...)
	stripped = append(stripped, serializedTx[len(serializedTx)-lockTimeLen:]...)

	log.Debugf("stripped transaction: %d -> %d bytes", len(serializedTx),
		len(stripped))
	return stripped, nil
}
