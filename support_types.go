package main

import (
	"fmt"

	"github.com/sirkon/seme/internal/anchors"
)

// Detail tells how much of a region goes into a diagnostic message.
type Detail int

const (
	DetailInvalid Detail = iota

	// DetailHead reports the head block only.
	DetailHead

	// DetailTails reports the head and tail blocks.
	DetailTails

	// DetailBlocks reports every member block.
	DetailBlocks
)

var detailValueMap = map[Detail]string{
	DetailHead:   "head",
	DetailTails:  "tails",
	DetailBlocks: "blocks",
}

func (d Detail) String() string {
	v, ok := detailValueMap[d]
	if !ok {
		return fmt.Sprintf("invalid(%d)", d)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (d *Detail) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range detailValueMap {
		if v == text {
			*d = k
			return nil
		}
	}

	return fmt.Errorf("unknown detail level %q", text)
}

// AnchorSpec binds a callee to an anchor group.
type AnchorSpec struct {
	Ref   anchors.Reference `yaml:"ref"`
	Group string            `yaml:"group"`
}
