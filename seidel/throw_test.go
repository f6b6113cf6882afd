package seidel

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleSolvePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleSolvePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = func() (err error) {
				defer func() {
					err = HandleSolvePanicRecover(recover())
				}()
				var constraints []HalfPlane
				_ = constraints[3]
				return nil
			}()
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestFatalWrapfKeepsSentinel(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = HandleSolvePanicRecover(recover())
		}()
		fatalWrapf(ErrNonFinite, "constraint %d", 2)
		return nil
	}()
	assert.True(t, errors.Is(err, ErrNonFinite))
	assert.EqualError(t, err, "constraint 2: coefficient is not finite")
}
