// Copyright (c) 2026 The Monetarium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

// config defines the configuration options for txstrip.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Debug bool   `short:"d" long:"debug" description:"Log parse diagnostics to stderr"`
	File  string `short:"f" long:"file" description:"Read the transaction hex from the given file instead of the command line"`
	Quiet bool   `short:"q" long:"quiet" description:"Suppress the summary line and only print the resulting hex"`
	TxID  bool   `long:"txid" description:"Also print the transaction id of the stripped serialization"`
}

// loadConfig initializes and parses the config using command line options
// and returns it along with the remaining non-option argument, which is
// the raw transaction hex unless --file is given.
func loadConfig() (*config, string, error) {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] rawtxhex"
	remaining, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		// The flags package prints the problem itself.
		return nil, "", err
	}

	switch {
	case cfg.File == "" && len(remaining) != 1:
		err := errors.New("a single raw transaction hex argument is " +
			"required unless --file is given")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, "", err

	case cfg.File != "" && len(remaining) != 0:
		err := errors.New("--file and a raw transaction hex argument " +
			"are mutually exclusive")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, "", err
	}

	var rawHex string
	if len(remaining) == 1 {
		rawHex = remaining[0]
	}
	return &cfg, rawHex, nil
}
