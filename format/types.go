// Package format defines the small value types shared by the wire-format
// packages: the column codec's compression strategy selector, the target
// platform table, and byte order.
package format

import "github.com/locpak/locpak/errs"

// Strategy selects one of the five column codec strategies from spec.md S4.5.
// It is the codec-level analog of the teacher's EncodingType: a small
// wire-adjacent enum with a String() method, never itself serialized (the
// container only records the resulting sym_tab/seq_tab shapes, not which
// strategy produced them).
type Strategy uint8

const (
	StrategyNone  Strategy = 0x1 // StrategyNone pre-populates one symbol per u16 code unit.
	StrategyFast  Strategy = 0x2 // StrategyFast allocates one symbol per distinct code unit used.
	StrategyLZPB  Strategy = 0x3 // StrategyLZPB greedily grows linked symbol chains.
	StrategyLZEX  Strategy = 0x4 // StrategyLZEX is StrategyLZPB plus whole-sequence reuse.
	StrategyTree  Strategy = 0x5 // StrategyTree promotes suffix-tree nodes into symbols.
	StrategyBest  Strategy = 0x6 // StrategyBest runs Tree, falling back to a char-anchored pass.
)

func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyFast:
		return "fast"
	case StrategyLZPB:
		return "lzpb"
	case StrategyLZEX:
		return "lzex"
	case StrategyTree:
		return "tree"
	case StrategyBest:
		return "best"
	default:
		return "unknown"
	}
}

// LevelToStrategy maps the save-bin CLI "level" argument (spec.md S6.1) to a
// Strategy: 0->none, 1->fast, 2..4->lzpb, 5..6->lzex, 7..8->tree, 9->best.
func LevelToStrategy(level int) (Strategy, error) {
	switch {
	case level == 0:
		return StrategyNone, nil
	case level == 1:
		return StrategyFast, nil
	case level >= 2 && level <= 4:
		return StrategyLZPB, nil
	case level == 5 || level == 6:
		return StrategyLZEX, nil
	case level == 7 || level == 8:
		return StrategyTree, nil
	case level == 9:
		return StrategyBest, nil
	default:
		return 0, errs.ErrInvalidLevel
	}
}

// Platform identifies a target hardware platform accepted by the CLI
// (spec.md S6.1).
type Platform uint8

const (
	PlatformPC   Platform = iota // PlatformPC is a little-endian PC target.
	PlatformX64                  // PlatformX64 is a little-endian x64 target.
	PlatformPS3                  // PlatformPS3 is a big-endian PS3 target.
	PlatformPS4                  // PlatformPS4 is a little-endian PS4 target.
	PlatformX360                 // PlatformX360 is a big-endian Xbox 360 target.
	PlatformXOne                 // PlatformXOne is a little-endian Xbox One target.
)

var platformNames = map[string]Platform{
	"pc":   PlatformPC,
	"x64":  PlatformX64,
	"ps3":  PlatformPS3,
	"ps4":  PlatformPS4,
	"x360": PlatformX360,
	"xone": PlatformXOne,
}

// ParsePlatform resolves a platform name from the CLI into a Platform value.
func ParsePlatform(name string) (Platform, error) {
	p, ok := platformNames[name]
	if !ok {
		return 0, errs.ErrInvalidPlatform
	}

	return p, nil
}

// BigEndian reports whether p is a big-endian platform. Per spec.md S6.1,
// only ps3 and x360 are big-endian; every other platform is little-endian.
func (p Platform) BigEndian() bool {
	return p == PlatformPS3 || p == PlatformX360
}

// DefaultVersion returns the default output version byte for p: 5 for
// big-endian platforms, 6 otherwise (spec.md S6.1).
func (p Platform) DefaultVersion() byte {
	if p.BigEndian() {
		return '5'
	}

	return '6'
}

func (p Platform) String() string {
	for name, v := range platformNames {
		if v == p {
			return name
		}
	}

	return "unknown"
}
