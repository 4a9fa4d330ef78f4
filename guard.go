package transmute

import (
	"fmt"
	"strings"
)

// Guard is a length checking policy deciding whether a number of bytes may be
// reinterpreted as values of a given size, and how many of those bytes to use.
//
// The set of guards is closed; each constant documents the byte counts it
// accepts for an element size S and an available count L.
type Guard uint8

const (
	// Permissive accepts any count and uses the largest multiple of S not
	// greater than L, silently dropping the remainder. It may produce zero
	// values.
	Permissive Guard = iota

	// SingleAtLeast accepts L >= S and uses exactly S bytes. It is the policy
	// of single value reads that ignore trailing data.
	SingleAtLeast

	// SingleExact accepts only L == S.
	SingleExact

	// SingleMany accepts L >= S and uses the largest multiple of S not greater
	// than L, so at least one value is always produced.
	SingleMany

	// Pedantic accepts L >= S when L is a multiple of S.
	Pedantic

	// AllOrNothing accepts any L which is a multiple of S, including zero.
	// Buffers holding less than one value are rejected with NotEnoughBytes.
	AllOrNothing

	numGuards
)

var guardNames = [...]string{
	Permissive:    "permissive",
	SingleAtLeast: "single-at-least",
	SingleExact:   "single-exact",
	SingleMany:    "single-many",
	Pedantic:      "pedantic",
	AllOrNothing:  "all-or-nothing",
}

// Guards returns the list of all guards, in declaration order.
func Guards() []Guard {
	guards := make([]Guard, numGuards)
	for i := range guards {
		guards[i] = Guard(i)
	}
	return guards
}

// ParseGuard returns the guard with the given name, as returned by String.
func ParseGuard(name string) (Guard, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, guardName := range guardNames {
		if name == guardName {
			return Guard(i), nil
		}
	}
	return 0, fmt.Errorf("unknown guard: %q (expected one of %s)", name, strings.Join(guardNames[:], ", "))
}

func (g Guard) String() string {
	if g.Valid() {
		return guardNames[g]
	}
	return fmt.Sprintf("Guard(%d)", uint8(g))
}

// Valid reports whether g is one of the declared guard constants.
func (g Guard) Valid() bool { return g < numGuards }

// Check decides whether available bytes may be reinterpreted as values of the
// given size. On success it returns the number of leading bytes to use, which
// is always a multiple of size. On failure the error is a *GuardError.
//
// Check never inspects any buffer, and is defined for every available >= 0.
// A size of zero is rejected by every guard. Values of g outside of the
// declared constants behave like AllOrNothing.
func (g Guard) Check(available, size int) (int, error) {
	if size <= 0 {
		return 0, zeroSizedElement(available)
	}

	whole := available - available%size

	switch g {
	case Permissive:
		return whole, nil

	case SingleAtLeast:
		if available < size {
			return 0, notEnoughBytes(size, available)
		}
		return size, nil

	case SingleExact:
		if available < size {
			return 0, notEnoughBytes(size, available)
		}
		if available > size {
			return 0, excessBytes(size, available)
		}
		return size, nil

	case SingleMany:
		if available < size {
			return 0, notEnoughBytes(size, available)
		}
		return whole, nil

	case Pedantic:
		if available < size {
			return 0, notEnoughBytes(size, available)
		}
		if whole != available {
			return 0, excessBytes(whole, available)
		}
		return available, nil

	default: // AllOrNothing
		if available != 0 && available < size {
			return 0, notEnoughBytes(size, available)
		}
		if whole != available {
			return 0, excessBytes(whole, available)
		}
		return available, nil
	}
}

// ConfigureDecode satisfies the DecodeOption interface, setting the guard
// applied to decoded payloads.
func (g Guard) ConfigureDecode(config *DecodeConfig) { config.Guard = g }
