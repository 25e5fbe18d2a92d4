// Package signature encodes generation parameters into a short
// shareable code. A signature is a 12 hex character (48 bit) string
// that reconstructs a landscape exactly:
//
//	Ver (4) | Reserved (10) | B1-B5 (4 each) | Seed (14)
//	47-44   | 43-34         | 33-14          | 13-0
//
// The reserved bits are written as zero and ignored on decode, so
// future format revisions can claim them without bumping the version.
package signature

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Version is the current signature format version. Decoding a
	// signature with a different version fails.
	Version = 0

	// MaxSeed is the largest seed a signature can carry (14 bits).
	MaxSeed = 1<<14 - 1

	// MaxBiomes is the number of biome slots in a signature.
	MaxBiomes = 5

	emptySlot = 0xF
)

// biomeCodes maps biome names to their 4-bit slot codes. Codes 9-14
// are reserved for future biomes and 15 marks an unused slot.
var biomeCodes = map[string]uint64{
	"ocean":     0,
	"forest":    1,
	"mountains": 2,
	"jungle":    3,
	"ice":       4,
	"plains":    5,
	"desert":    6,
	"alpine":    7,
	"beach":     8,
}

var biomeNames = func() map[uint64]string {
	m := make(map[uint64]string, len(biomeCodes))
	for name, code := range biomeCodes {
		m[code] = name
	}
	return m
}()

// Scene is the decoded content of a signature: the seed and the biome
// sequence, ordered near to far.
type Scene struct {
	Seed   int64
	Biomes []string
}

// Encode packs the scene into a 12-character uppercase hex signature.
// Seeds above MaxSeed are clamped so the signature stays reproducible;
// callers that want the exact seed preserved must keep it in range.
func Encode(s Scene) (string, error) {
	if len(s.Biomes) == 0 {
		return "", fmt.Errorf("signature: no biomes to encode")
	}
	if len(s.Biomes) > MaxBiomes {
		return "", fmt.Errorf("signature: %d biomes exceed the %d slots", len(s.Biomes), MaxBiomes)
	}
	if s.Seed < 0 {
		return "", fmt.Errorf("signature: negative seed %d", s.Seed)
	}
	seed := uint64(s.Seed)
	if seed > MaxSeed {
		seed = MaxSeed
	}

	value := uint64(Version) << 44
	for i := 0; i < MaxBiomes; i++ {
		code := uint64(emptySlot)
		if i < len(s.Biomes) {
			var ok bool
			code, ok = biomeCodes[s.Biomes[i]]
			if !ok {
				return "", fmt.Errorf("signature: unknown biome %q", s.Biomes[i])
			}
		}
		value |= code << (30 - 4*i)
	}
	value |= seed

	return fmt.Sprintf("%012X", value), nil
}

// Decode parses a 12-character hex signature back into a scene. It
// rejects malformed strings, unknown format versions, and biome codes
// this build does not know about.
func Decode(sig string) (Scene, error) {
	if len(sig) != 12 {
		return Scene{}, fmt.Errorf("signature: %q is not 12 characters", sig)
	}
	value, err := strconv.ParseUint(strings.ToUpper(sig), 16, 64)
	if err != nil {
		return Scene{}, fmt.Errorf("signature: %q is not hexadecimal", sig)
	}

	if v := value >> 44 & 0xF; v != Version {
		return Scene{}, fmt.Errorf("signature: unknown version %d, update to decode this signature", v)
	}

	s := Scene{Seed: int64(value & MaxSeed)}
	for i := 0; i < MaxBiomes; i++ {
		code := value >> (30 - 4*i) & 0xF
		if code == emptySlot {
			continue
		}
		name, ok := biomeNames[code]
		if !ok {
			return Scene{}, fmt.Errorf("signature: reserved biome code %d in slot %d", code, i+1)
		}
		s.Biomes = append(s.Biomes, name)
	}
	return s, nil
}
