// Package ozzerr defines the closed set of failure kinds produced by the
// skeleton runtime. Each kind has a sentinel error, a constructor that
// attaches context, and a predicate so callers can branch on category
// without depending on message text.
package ozzerr

import (
	"errors"
	"fmt"
)

var (
	// ErrLockPoison reports that a cross-thread shared buffer's lock was
	// left poisoned by a panicking holder.
	ErrLockPoison = errors.New("lock poisoned")

	// ErrInvalidJob reports that a caller-supplied job failed validation
	// before execution.
	ErrInvalidJob = errors.New("invalid job")

	// ErrInvalidIndex reports an out-of-bounds buffer or hierarchy index.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrIO wraps an underlying byte-stream read or write failure.
	ErrIO = errors.New("io error")

	// ErrUTF8 reports that a decoded name was not valid UTF-8.
	ErrUTF8 = errors.New("utf8 error")

	// ErrInvalidTag reports that an archive's leading type tag did not
	// match the expected resource tag.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrInvalidVersion reports that an archive's version field did not
	// match the version this decoder supports.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrCustom is the escape hatch for caller-defined failures. The
	// runtime itself never produces it outside of tests.
	ErrCustom = errors.New("custom error")
)

// IO wraps cause as an ErrIO, annotated with the operation that failed.
func IO(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, cause)
}

// UTF8 reports invalid text encountered while decoding what.
func UTF8(what string) error {
	return fmt.Errorf("%w: %s", ErrUTF8, what)
}

// InvalidIndex reports index idx being out of range for a sequence of
// length n.
func InvalidIndex(idx, n int) error {
	return fmt.Errorf("%w: %d out of range [0, %d)", ErrInvalidIndex, idx, n)
}

// InvalidTag reports an archive tag mismatch.
func InvalidTag(got, want string) error {
	return fmt.Errorf("%w: got %q, want %q", ErrInvalidTag, got, want)
}

// InvalidVersion reports an archive version mismatch.
func InvalidVersion(got, want uint32) error {
	return fmt.Errorf("%w: got %d, want %d", ErrInvalidVersion, got, want)
}

// Custom builds a caller-defined error carrying msg.
func Custom(msg string) error {
	return fmt.Errorf("%w: %s", ErrCustom, msg)
}

func IsLockPoison(err error) bool     { return errors.Is(err, ErrLockPoison) }
func IsInvalidJob(err error) bool     { return errors.Is(err, ErrInvalidJob) }
func IsInvalidIndex(err error) bool   { return errors.Is(err, ErrInvalidIndex) }
func IsIO(err error) bool             { return errors.Is(err, ErrIO) }
func IsUTF8(err error) bool           { return errors.Is(err, ErrUTF8) }
func IsInvalidTag(err error) bool     { return errors.Is(err, ErrInvalidTag) }
func IsInvalidVersion(err error) bool { return errors.Is(err, ErrInvalidVersion) }
func IsCustom(err error) bool         { return errors.Is(err, ErrCustom) }
