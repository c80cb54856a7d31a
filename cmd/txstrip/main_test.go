// Copyright (c) 2026 The Monetarium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDecodeTxHex ensures the hex boundary tolerates the forms the tool
// accepts and rejects everything else.
func TestDecodeTxHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{{
		name: "plain hex",
		in:   "00010203",
		want: []byte{0x00, 0x01, 0x02, 0x03},
	}, {
		name: "0x prefix",
		in:   "0x00010203",
		want: []byte{0x00, 0x01, 0x02, 0x03},
	}, {
		name: "surrounding whitespace",
		in:   "  00010203\n",
		want: []byte{0x00, 0x01, 0x02, 0x03},
	}, {
		name: "empty",
		in:   "",
		want: []byte{},
	}, {
		name:    "odd length",
		in:      "00010",
		wantErr: true,
	}, {
		name:    "non-hex characters",
		in:      "00zz",
		wantErr: true,
	}}

	for _, test := range tests {
		got, err := decodeTxHex(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if err != nil {
			continue
		}
		if !bytes.Equal(got, test.want) {
			t.Errorf("%q: unexpected bytes -- got %x, want %x",
				test.name, got, test.want)
		}
	}
}

// TestDisplayTxID ensures the transaction id is the byte-reversed double
// SHA256 of the serialization.  The second case is the well known id of
// the empty version 1 transaction.
func TestDisplayTxID(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{{
		name: "empty version 0 transaction",
		in: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00},
		want: "f702453dd03b0f055e5437d76128141803984fb10acb85fc3b2184fae2f3fa78",
	}, {
		name: "empty version 1 transaction",
		in: []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00},
		want: "d21633ba23f70118185227be58a63527675641ad37967e2aa461559f577aec43",
	}}

	for _, test := range tests {
		got := displayTxID(test.in)
		if got != test.want {
			t.Errorf("%q: unexpected txid -- got %v, want %v",
				test.name, got, test.want)
		}
	}
}

// TestRun exercises the full strip path through run, including the file
// input seam, output selection, and error propagation.  The file case
// uses the smallest witness serialization, whose stripped form and txid
// are fixed by TestDisplayTxID above.
func TestRun(t *testing.T) {
	txFile := filepath.Join(t.TempDir(), "tx.hex")
	err := os.WriteFile(txFile, []byte("  0x000000000001000000000000\n"),
		0o600)
	if err != nil {
		t.Fatalf("unable to write transaction file: %v", err)
	}

	tests := []struct {
		name       string
		cfg        config
		rawHex     string
		wantStdout string
		wantStderr string // substring, empty means no output at all
		wantErr    bool
	}{{
		name:   "witness serialization from file with txid",
		cfg:    config{File: txFile, TxID: true},
		wantStdout: "00000000000000000000\n" +
			"f702453dd03b0f055e5437d76128141803984fb10acb85fc3b2184fae2f3fa78\n",
		wantStderr: "stripped 2 witness bytes (12 -> 10)",
	}, {
		name:       "quiet non-witness passthrough from command line",
		cfg:        config{Quiet: true},
		rawHex:     "deadbeefdead",
		wantStdout: "deadbeefdead\n",
	}, {
		name:       "non-witness passthrough summary",
		cfg:        config{},
		rawHex:     "deadbeefdead",
		wantStdout: "deadbeefdead\n",
		wantStderr: "no segwit marker",
	}, {
		name:    "missing file",
		cfg:     config{File: filepath.Join(t.TempDir(), "nope.hex")},
		wantErr: true,
	}, {
		name:    "invalid hex",
		rawHex:  "00zz",
		wantErr: true,
	}, {
		name:    "truncated witness serialization",
		rawHex:  "0000000000010000000000",
		wantErr: true,
	}}

	for _, test := range tests {
		var stdout, stderr bytes.Buffer
		err := run(&test.cfg, test.rawHex, &stdout, &stderr)
		if (err != nil) != test.wantErr {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if err != nil {
			continue
		}

		if stdout.String() != test.wantStdout {
			t.Errorf("%q: unexpected stdout -- got %q, want %q",
				test.name, stdout.String(), test.wantStdout)
		}
		if test.wantStderr == "" {
			if stderr.Len() != 0 {
				t.Errorf("%q: unexpected stderr output: %q", test.name,
					stderr.String())
			}
		} else if !strings.Contains(stderr.String(), test.wantStderr) {
			t.Errorf("%q: stderr %q does not mention %q", test.name,
				stderr.String(), test.wantStderr)
		}
	}
}
