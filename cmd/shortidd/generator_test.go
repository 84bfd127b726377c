// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/shortid"
	"go.uber.org/zap"
)

func TestNewCLI_Defaults(t *testing.T) {
	cli, kctx, err := NewCLI(nil)
	require.NoError(t, err)
	require.NotNil(t, kctx)

	assert.Equal(t, "tcp", cli.Network)
	assert.Equal(t, ":8080", cli.Address)
	assert.Equal(t, "seconds", cli.Precision)
	assert.Equal(t, 10, cli.Bytes)
	assert.Equal(t, "shortidd", cli.Issuer)
	assert.Equal(t, "EC", cli.KeyType)
}

func TestNewCLI_BadPrecision(t *testing.T) {
	_, _, err := NewCLI([]string{"--precision", "nanoseconds"})
	assert.Error(t, err)
}

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name      string
		precision string
		bytes     int
		expectErr bool
	}{
		{"seconds default", "seconds", 10, false},
		{"microseconds default", "microseconds", 10, false},
		{"seconds minimum", "seconds", 4, false},
		{"microseconds minimum", "microseconds", 8, false},
		{"maximum", "seconds", 32, false},
		{"oversize", "seconds", 33, true},
		{"below seconds width", "seconds", 3, true},
		{"below microseconds width", "microseconds", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := testCLI()
			cli.Precision = tt.precision
			cli.Bytes = tt.bytes

			g, err := NewGenerator(zap.NewNop(), cli)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			id, err := g.GenerateOrdered(tt.bytes)
			require.NoError(t, err)
			assert.Len(t, id, shortid.EncodedLen(tt.bytes))
		})
	}
}
