// Copyright (c) 2026 The Monetarium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// txstrip rewrites a serialized bitcoin transaction from the segregated
// witness serialization into the legacy serialization the transaction id
// is computed over.  It accepts the transaction as hex, prints the
// rewritten hex, and optionally the resulting transaction id.
package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/decred/slog"
	"github.com/monetarium/txstrip/segwit"
)

// decodeTxHex decodes a raw transaction hex string, tolerating surrounding
// whitespace and an optional 0x prefix.
func decodeTxHex(rawHex string) ([]byte, error) {
	rawHex = strings.TrimSpace(rawHex)
	rawHex = strings.TrimPrefix(rawHex, "0x")
	serializedTx, err := hex.DecodeString(rawHex)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction hex: %w", err)
	}
	return serializedTx, nil
}

// displayTxID returns the transaction id of the provided legacy
// serialization rendered in the conventional display order, which is the
// double SHA256 of the bytes with the digest byte-reversed.
func displayTxID(serializedTx []byte) string {
	first := sha256.Sum256(serializedTx)
	txid := sha256.Sum256(first[:])
	for i, j := 0, len(txid)-1; i < j; i, j = i+1, j-1 {
		txid[i], txid[j] = txid[j], txid[i]
	}
	return hex.EncodeToString(txid[:])
}

// run is the real main function for txstrip.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit is
// called, and taking the output writers keeps it testable.
func run(cfg *config, rawHex string, stdout, stderr io.Writer) error {
	if cfg.Debug {
		backend := slog.NewBackend(stderr)
		logger := backend.Logger("STRP")
		logger.SetLevel(slog.LevelTrace)
		segwit.UseLogger(logger)
		defer segwit.DisableLog()
	}

	if cfg.File != "" {
		contents, err := os.ReadFile(cfg.File)
		if err != nil {
			return err
		}
		rawHex = string(bytes.TrimSpace(contents))
	}

	serializedTx, err := decodeTxHex(rawHex)
	if err != nil {
		return err
	}

	hadWitness := segwit.IsWitnessSerialization(serializedTx)
	stripped, err := segwit.StripWitness(serializedTx)
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		if hadWitness {
			fmt.Fprintf(stderr, "stripped %d witness bytes (%d -> "+
				"%d)\n", len(serializedTx)-len(stripped),
				len(serializedTx), len(stripped))
		} else {
			fmt.Fprintln(stderr, "no segwit marker, transaction "+
				"returned unchanged")
		}
	}

	fmt.Fprintln(stdout, hex.EncodeToString(stripped))
	if cfg.TxID {
		fmt.Fprintln(stdout, displayTxID(stripped))
	}
	return nil
}

func main() {
	// Load configuration and parse command line.  Any errors have
	// already been reported by this point.
	cfg, rawHex, err := loadConfig()
	if err != nil {
		os.Exit(1)
	}

	if err := run(cfg, rawHex, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
