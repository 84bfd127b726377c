// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/xmidt-org/shortid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewGenerator builds the identifier generator shared by every handler
// in this daemon. The configured byte count is validated here so a bad
// command line fails at startup instead of on the first request.
func NewGenerator(l *zap.Logger, cli CLI) (g *shortid.Generator, err error) {
	p := shortid.Seconds
	if cli.Precision == "microseconds" {
		p = shortid.Microseconds
	}

	switch {
	case cli.Bytes > shortid.MaxSize:
		err = fmt.Errorf("unsupported identifier size: %d", cli.Bytes)

	case cli.Bytes < p.TimestampLen():
		// ordered identifiers need room for the timestamp prefix
		err = fmt.Errorf("identifier size %d is below the %s timestamp width of %d",
			cli.Bytes, p, p.TimestampLen())

	default:
		g = shortid.NewGenerator(p)
		l.Info("generator",
			zap.Stringer("precision", p),
			zap.Int("bytes", cli.Bytes),
			zap.Int("encodedLength", shortid.EncodedLen(cli.Bytes)),
		)
	}

	return
}

func ProvideGenerator() fx.Option {
	return fx.Provide(
		NewGenerator,
	)
}
