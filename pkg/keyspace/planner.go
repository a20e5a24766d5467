// Package keyspace implements total-keyspace computation per attack mode
// and slice (skip, limit) generation for distribution to agents. The
// arithmetic is pure numeric domain logic, so it sits on the standard
// library alone.
package keyspace

import "fmt"

// charsetSize returns the candidate-character count for a hashcat mask
// builtin charset token, or 0 if tok isn't a recognized builtin.
func charsetSize(tok byte, custom [4]string) int {
	switch tok {
	case 'l':
		return 26
	case 'u':
		return 26
	case 'd':
		return 10
	case 's':
		return 33
	case 'a':
		return 95
	case 'b':
		return 256
	case '1':
		return len(custom[0])
	case '2':
		return len(custom[1])
	case '3':
		return len(custom[2])
	case '4':
		return len(custom[3])
	default:
		return 0
	}
}

// MaskKeyspace computes the candidate count implied by a hashcat mask
// string (e.g. "?l?l?l?l?d?d") against up to 4 custom charsets.
func MaskKeyspace(mask string, custom [4]string) (int64, error) {
	var total int64 = 1
	positions := 0
	for i := 0; i < len(mask); i++ {
		if mask[i] != '?' {
			// Literal character: exactly one candidate for this position.
			positions++
			continue
		}
		i++
		if i >= len(mask) {
			return 0, fmt.Errorf("keyspace: mask %q ends with a dangling '?'", mask)
		}
		size := charsetSize(mask[i], custom)
		if size == 0 {
			return 0, fmt.Errorf("keyspace: mask %q references unknown/empty charset '?%c'", mask, mask[i])
		}
		total *= int64(size)
		positions++
	}
	if positions == 0 {
		return 0, fmt.Errorf("keyspace: mask %q has no positions", mask)
	}
	return total, nil
}

// AttackMode mirrors the generated ent/attack.AttackMode enum values.
type AttackMode string

const (
	ModeDictionary       AttackMode = "dictionary"
	ModeMask             AttackMode = "mask"
	ModeHybridDictionary AttackMode = "hybrid_dictionary"
	ModeHybridMask       AttackMode = "hybrid_mask"
)

// Inputs bundles everything the planner needs to compute total_keyspace for
// one attack. Nil line counts mean "not yet known": the caller
// must treat the attack as not dispatchable and never call Plan for it.
type Inputs struct {
	Mode               AttackMode
	Mask               string
	MaskListMasks       []string
	CustomCharsets     [4]string
	WordListLineCount  *int64
	RuleListLineCount  *int64
	IncrementMode      bool
	IncrementMinimum   int
	IncrementMaximum   int
}

// ErrResourcesNotReady is returned when a required resource's line_count is
// still NULL; the caller must skip the attack.
var ErrResourcesNotReady = fmt.Errorf("keyspace: required resource line_count not yet known")

// Phase is one increment-mode length, or the sole phase for non-increment attacks.
type Phase struct {
	// MaskLength is informational only for dictionary/hybrid attacks without
	// increment (always 0 there).
	MaskLength int
	Keyspace   int64
}

// Plan computes total_keyspace and, for increment attacks, the per-length
// phase breakdown (slicing never spans two increment lengths).
func Plan(in Inputs) (total int64, phases []Phase, err error) {
	ruleMultiplier := int64(1)
	if in.RuleListLineCount != nil {
		if *in.RuleListLineCount > 0 {
			ruleMultiplier = *in.RuleListLineCount
		}
	}

	switch in.Mode {
	case ModeDictionary:
		if in.WordListLineCount == nil {
			return 0, nil, ErrResourcesNotReady
		}
		k := *in.WordListLineCount * ruleMultiplier
		return k, []Phase{{Keyspace: k}}, nil

	case ModeMask:
		if in.IncrementMode {
			return planIncrementMask(in)
		}
		k, maskErr := maskOrListKeyspace(in)
		if maskErr != nil {
			return 0, nil, maskErr
		}
		return k, []Phase{{Keyspace: k}}, nil

	case ModeHybridDictionary, ModeHybridMask:
		if in.WordListLineCount == nil {
			return 0, nil, ErrResourcesNotReady
		}
		maskK, maskErr := maskOrListKeyspace(in)
		if maskErr != nil {
			return 0, nil, maskErr
		}
		k := *in.WordListLineCount * maskK * ruleMultiplier
		return k, []Phase{{Keyspace: k}}, nil

	default:
		return 0, nil, fmt.Errorf("keyspace: unknown attack mode %q", in.Mode)
	}
}

func maskOrListKeyspace(in Inputs) (int64, error) {
	if len(in.MaskListMasks) > 0 {
		var sum int64
		for _, m := range in.MaskListMasks {
			k, err := MaskKeyspace(m, in.CustomCharsets)
			if err != nil {
				return 0, err
			}
			sum += k
		}
		return sum, nil
	}
	return MaskKeyspace(in.Mask, in.CustomCharsets)
}

// planIncrementMask expands the mask's trailing positions across
// [increment_minimum, increment_maximum] lengths, one phase per length,
// increment rule.
func planIncrementMask(in Inputs) (int64, []Phase, error) {
	if in.IncrementMinimum < 0 || in.IncrementMaximum < in.IncrementMinimum {
		return 0, nil, fmt.Errorf("keyspace: invalid increment range [%d, %d]", in.IncrementMinimum, in.IncrementMaximum)
	}
	tokens, err := maskTokens(in.Mask)
	if err != nil {
		return 0, nil, err
	}
	var total int64
	var phases []Phase
	for length := in.IncrementMinimum; length <= in.IncrementMaximum; length++ {
		if length > len(tokens) {
			return 0, nil, fmt.Errorf("keyspace: increment length %d exceeds mask length %d", length, len(tokens))
		}
		var k int64 = 1
		for _, tok := range tokens[:length] {
			size := charsetSize(tok, in.CustomCharsets)
			if size == 0 {
				return 0, nil, fmt.Errorf("keyspace: mask %q references unknown/empty charset '?%c'", in.Mask, tok)
			}
			k *= int64(size)
		}
		phases = append(phases, Phase{MaskLength: length, Keyspace: k})
		total += k
	}
	return total, phases, nil
}

// maskTokens splits a mask string into one byte per position: the charset
// token following '?', or the literal byte itself.
func maskTokens(mask string) ([]byte, error) {
	var tokens []byte
	for i := 0; i < len(mask); i++ {
		if mask[i] != '?' {
			tokens = append(tokens, mask[i])
			continue
		}
		i++
		if i >= len(mask) {
			return nil, fmt.Errorf("keyspace: mask %q ends with a dangling '?'", mask)
		}
		tokens = append(tokens, mask[i])
	}
	return tokens, nil
}

// Slice is one (skip, limit) pair, always non-overlapping and contiguous
// across a full call to Slices.
type Slice struct {
	Skip  int64
	Limit int64
}

// Slices emits consecutive (skip, limit) pairs covering [0, total) such
// that no pair spans two increment phases, sized at
// targetSliceSize candidates per slice (derived by the caller from a
// benchmark's hash rate and the configured target slice duration). The
// last slice of each phase absorbs the remainder.
func Slices(phases []Phase, targetSliceSize int64) ([]Slice, error) {
	if targetSliceSize <= 0 {
		return nil, fmt.Errorf("keyspace: targetSliceSize must be positive")
	}
	var slices []Slice
	var cursor int64
	for _, phase := range phases {
		remaining := phase.Keyspace
		for remaining > 0 {
			size := targetSliceSize
			if size > remaining {
				size = remaining
			}
			slices = append(slices, Slice{Skip: cursor, Limit: size})
			cursor += size
			remaining -= size
		}
	}
	return slices, nil
}

// ProbeSliceSize is the conservative default slice size issued when no
// benchmark exists for the attack's hash type.
const ProbeSliceSize int64 = 100_000_000

// TargetSliceSize derives a slice size in candidates from a benchmark's
// hash rate (candidates/second) and a target wall-clock slice duration,
// clamped so slices stay within hashcat's practical 30-120s window.
func TargetSliceSize(hashesPerSecond float64, targetSeconds int) int64 {
	if hashesPerSecond <= 0 || targetSeconds <= 0 {
		return ProbeSliceSize
	}
	size := int64(hashesPerSecond * float64(targetSeconds))
	if size < 1 {
		return 1
	}
	return size
}
