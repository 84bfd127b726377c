// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	// ErrRotatorStarted is returned by Rotator.Start to indicate that Start has already been called.
	ErrRotatorStarted = errors.New("the key rotator has already been started")

	// ErrRotatorStopped is returned by Rotator.Stop to indicate that Stop has already been called.
	ErrRotatorStopped = errors.New("the key rotator has already been stopped")
)

// RotatorIn defines the dependencies necessary to create a Rotator.
type RotatorIn struct {
	fx.In

	Logger    *zap.Logger
	Key       *Key
	CLI       CLI
	Lifecycle fx.Lifecycle
}

// Rotator replaces the receipt signing key on the configured interval.
// Receipts remain verifiable only against the key that signed them, so
// callers should fetch the public key close to verification time.
type Rotator struct {
	logger *zap.Logger
	key    *Key
	rotate time.Duration

	lock   sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func NewRotator(in RotatorIn) (r *Rotator) {
	r = &Rotator{
		logger: in.Logger,
		key:    in.Key,
		rotate: in.CLI.KeyRotate,
	}

	r.logger.Info("rotator",
		zap.Duration("rotate", r.rotate),
	)

	in.Lifecycle.Append(
		fx.StartStopHook(
			r.Start,
			r.Stop,
		),
	)

	return
}

// rotateTask represents the background goroutine that rotates keys.
type rotateTask struct {
	ctx    context.Context
	logger *zap.Logger
	rotate func() (GeneratedKey, error)
	ch     <-chan time.Time
	stop   func()
}

// run is a goroutine that rotates keys in the background.
func (rt rotateTask) run() {
	defer rt.stop()

	for {
		select {
		case <-rt.ctx.Done():
			return

		case <-rt.ch:
			if newKey, err := rt.rotate(); err == nil {
				rt.logger.Info("rotated key", zap.String("kid", newKey.KID))
			} else {
				rt.logger.Error("unable to rotate key", zap.Error(err))
			}
		}
	}
}

// Start begins rotating the signing key on the configured interval. The
// initial key was already generated when the Key was constructed. This
// method is idempotent.
func (r *Rotator) Start() (err error) {
	defer r.lock.Unlock()
	r.lock.Lock()

	if r.cancel != nil {
		// already started
		return ErrRotatorStarted
	}

	r.logger.Info("starting key rotation task", zap.Duration("interval", r.rotate))
	r.ctx, r.cancel = context.WithCancel(context.Background())
	ticker := time.NewTicker(r.rotate)
	go rotateTask{
		ctx:    r.ctx,
		logger: r.logger,
		rotate: r.key.Rotate,
		ch:     ticker.C,
		stop:   ticker.Stop,
	}.run()

	return
}

// Stop stops all background processes started by this Rotator. This method is idempotent.
func (r *Rotator) Stop() (err error) {
	defer r.lock.Unlock()
	r.lock.Lock()

	if r.cancel != nil {
		r.cancel()
		r.ctx, r.cancel = nil, nil
	} else {
		err = ErrRotatorStopped
	}

	return
}

func ProvideRotator() fx.Option {
	return fx.Options(
		fx.Provide(
			NewRotator,
		),
		fx.Invoke(
			// ensure the Rotator starts
			func(*Rotator) {},
		),
	)
}
