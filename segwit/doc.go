// Copyright (c) 2026 The Monetarium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package segwit rewrites serialized bitcoin transactions from the segregated
witness serialization into the legacy serialization.

The segwit serialization inserts a two byte marker and flag after the
version and appends a witness section between the outputs and the locktime.
The legacy serialization omits both, and it is the legacy bytes that feed
the transaction id, so recovering them from a witness serialization is a
pure byte rewriting problem: locate the input and output sections by
walking the variable-length fields, then reassemble the version, both
sections, and the locktime without the witness material in between.

Scripts, signatures, and witness items are never interpreted, only located
and copied or skipped, so the package imposes no policy beyond the
serialization layout itself.

# Errors

Errors returned by this package are of type segwit.Error and fully support
the errors.Is and errors.As functions.  Only two kinds exist: ErrInvalidTx
for inputs too short to carry a version and marker region, and
ErrOutOfBounds for any field that would read past the end of the input.
*/
package segwit
