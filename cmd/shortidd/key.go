// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/xmidt-org/shortid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// kidSize is the byte count for key identifiers, which encode to
// 22 characters.
const kidSize = 16

// GeneratedKey holds the various objects related to a generated JWK.
type GeneratedKey struct {
	// KID is the unique, URL-safe identifier for this key.
	KID string

	// Key is the actual generated key.  This will always be a PRIVATE key.
	Key jwk.Key

	// Public is the premarshaled public portion of Key, in jwk+json format.
	Public []byte
}

// Key holds the current key used to sign receipts. The current key may
// be rotated at any time; readers always observe a complete key.
type Key struct {
	logger  *zap.Logger
	random  io.Reader
	ids     *shortid.Generator
	current atomic.Value

	alg   jwa.KeyAlgorithm
	kty   jwa.KeyType
	bits  int
	curve elliptic.Curve
}

func NewKey(logger *zap.Logger, ids *shortid.Generator, cli CLI) (k *Key, err error) {
	k = &Key{
		logger: logger,
		random: rand.Reader,
		ids:    ids,
		bits:   cli.KeySize,
	}

	switch {
	case cli.KeyType == "EC" && cli.KeyCurve == "P-256":
		k.kty = jwa.EC()
		k.curve = elliptic.P256()
		k.alg = jwa.ES256()

	case cli.KeyType == "EC" && cli.KeyCurve == "P-384":
		k.kty = jwa.EC()
		k.curve = elliptic.P384()
		k.alg = jwa.ES384()

	case cli.KeyType == "EC" && cli.KeyCurve == "P-521":
		k.kty = jwa.EC()
		k.curve = elliptic.P521()
		k.alg = jwa.ES512()

	case cli.KeyType == "RSA" && cli.KeySize > 0:
		k.kty = jwa.RSA()
		k.bits = cli.KeySize
		k.alg = jwa.RS256()

	default:
		err = fmt.Errorf("unsupported key parameters: type=%s, size=%d, curve=%s", cli.KeyType, cli.KeySize, cli.KeyCurve)
	}

	if err == nil {
		_, err = k.Rotate()
	}

	return
}

// generateKey creates a new key of the configured type.
func (k *Key) generateKey(kid string) (key jwk.Key, err error) {
	var raw any

	switch {
	case k.kty == jwa.RSA():
		raw, err = rsa.GenerateKey(k.random, k.bits)

	case k.kty == jwa.EC():
		raw, err = ecdsa.GenerateKey(k.curve, k.random)

	default:
		err = fmt.Errorf("unsupported key type: %s", k.kty)
	}

	if err == nil {
		key, err = jwk.Import(raw)
	}

	if err == nil {
		key.Set(jwk.KeyUsageKey, jwk.ForSignature)
		key.Set(jwk.KeyOpsKey, jwk.KeyOperationList{jwk.KeyOpSign, jwk.KeyOpVerify})
		key.Set(jwk.KeyIDKey, kid)
	}

	return
}

// Rotate replaces the current signing key with a freshly generated one
// and returns it. If this method returns an error, the current key was
// not replaced.
func (k *Key) Rotate() (updated GeneratedKey, err error) {
	updated.KID, err = k.ids.Generate(kidSize)
	if err == nil {
		updated.Key, err = k.generateKey(updated.KID)
	}

	var publicKey jwk.Key
	if err == nil {
		publicKey, err = updated.Key.PublicKey()
	}

	if err == nil {
		updated.Public, err = json.Marshal(publicKey)
	}

	if err == nil {
		k.current.Store(updated)
	}

	return
}

func (k *Key) Alg() jwa.KeyAlgorithm {
	return k.alg
}

func (k *Key) Current() GeneratedKey {
	return k.current.Load().(GeneratedKey)
}

// KeyHandler renders the PUBLIC portion of the current key over HTTP.
type KeyHandler struct {
	logger *zap.Logger
	key    *Key
}

func NewKeyHandler(logger *zap.Logger, key *Key) *KeyHandler {
	return &KeyHandler{
		logger: logger,
		key:    key,
	}
}

func (kh *KeyHandler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	marshaled := kh.key.Current().Public
	response.Header().Set("Content-Type", "application/jwk+json")
	response.Write(marshaled)
}

func ProvideKey() fx.Option {
	return fx.Provide(
		NewKey,
		NewKeyHandler,
	)
}
