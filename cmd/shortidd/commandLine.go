// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Network string `default:"tcp" enum:"tcp,tcp4,tcp6" help:"the network for the server to bind on"`
	Address string `default:":8080" help:"the bind address for the server"`

	Precision string `short:"p" default:"seconds" enum:"seconds,microseconds" help:"the timestamp precision for ordered identifiers"`
	Bytes     int    `short:"b" default:"10" help:"the number of bytes identifiers are generated from, between 1 and 32"`

	Issuer  string        `short:"i" default:"shortidd" help:"the issuer (iss) for minted receipts"`
	Expires time.Duration `short:"e" default:"15m" help:"how long until minted receipts expire.  used to compute the exp claim."`

	KeyRotate time.Duration `default:"24h" help:"how often the receipt signing key is rotated."`
	KeyType   string        `enum:"EC,RSA" default:"EC" help:"the key type (kty) used to sign receipts"`
	KeySize   int           `default:"2048" help:"the bit length for keys. used only for RSA keys."`
	KeyCurve  string        `default:"P-256" enum:"P-256,P-384,P-521" help:"the elliptic curve for key generation. used only for EC keys."`
}

func NewCLI(args []string, options ...kong.Option) (cli CLI, kctx *kong.Context, err error) {
	options = append(
		[]kong.Option{
			kong.Description("daemon that issues short, URL-safe identifiers over HTTP"),
			kong.UsageOnError(),
		},
		options...,
	)

	var k *kong.Kong
	k, err = kong.New(&cli, options...)
	if err == nil {
		kctx, err = k.Parse(args)
	}

	return
}
