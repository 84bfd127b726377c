package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/xmidt-org/shortid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Minter builds receipts: JWTs whose jti is a freshly generated,
// time-ordered identifier. A receipt lets a caller prove an identifier
// was issued by this daemon and when.
type Minter struct {
	logger    *zap.Logger
	generator *shortid.Generator
	now       func() time.Time

	iss     string
	size    int
	expires time.Duration
}

func NewMinter(l *zap.Logger, g *shortid.Generator, cli CLI) (m *Minter, err error) {
	m = &Minter{
		logger:    l,
		generator: g,
		now:       time.Now,
		iss:       cli.Issuer,
		size:      cli.Bytes,
		expires:   cli.Expires,
	}

	m.logger.Info("minter",
		zap.String("iss", m.iss),
		zap.Int("bytes", m.size),
		zap.Duration("expires", m.expires),
	)

	return
}

func (m *Minter) Mint() (t jwt.Token, err error) {
	var jti string
	jti, err = m.generator.GenerateOrdered(m.size)
	if err == nil {
		now := m.now().UTC()
		t, err = jwt.NewBuilder().
			JwtID(jti).
			Issuer(m.iss).
			IssuedAt(now).
			Expiration(now.Add(m.expires)).
			Build()
	}

	return
}

// MintHandler serves signed receipts over HTTP.
type MintHandler struct {
	logger *zap.Logger
	minter *Minter
	signer *Signer
}

func NewMintHandler(l *zap.Logger, minter *Minter, signer *Signer) *MintHandler {
	return &MintHandler{
		logger: l,
		minter: minter,
		signer: signer,
	}
}

func (mh *MintHandler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	var signed []byte
	t, err := mh.minter.Mint()
	if err == nil {
		signed, err = mh.signer.Sign(t)
	}

	switch {
	case err == nil:
		response.Header().Set("Content-Type", "application/jwt")
		response.Write(signed)

	case errors.Is(err, shortid.ErrInvalidLength):
		http.Error(response, err.Error(), http.StatusBadRequest)

	default:
		mh.logger.Error("unable to mint receipt", zap.Error(err))
		http.Error(response, err.Error(), http.StatusInternalServerError)
	}
}

func ProvideMinter() fx.Option {
	return fx.Provide(
		NewMinter,
		NewMintHandler,
	)
}
