package binding

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNoCapabilityTier means none of a ladder's representative slots
// resolved. Initialization must stop: there is no capability baseline.
var ErrNoCapabilityTier = errors.New("binding: no capability tier detected")

// Tier is an ordered capability level.
type Tier int

// Rung pairs a tier with the slot whose presence proves it.
type Rung struct {
	Tier Tier
	Slot string
}

// Detect walks the whole ladder from lowest to highest and returns the
// highest tier whose representative slot is bound. A higher rung counts even
// when a lower one is missing.
func Detect(t *Table, ladder []Rung) (Tier, error) {
	var (
		highest Tier
		found   bool
	)
	for _, rung := range ladder {
		if !t.Bound(rung.Slot) {
			continue
		}
		if !found || rung.Tier > highest {
			highest = rung.Tier
		}
		found = true
	}
	if !found {
		Logger().Error("no capability tier detected", zap.String("surface", t.Surface()))
		return 0, fmt.Errorf("%s: %w", t.Surface(), ErrNoCapabilityTier)
	}
	Logger().Info("capability tier detected",
		zap.String("surface", t.Surface()),
		zap.Int("tier", int(highest)))
	return highest, nil
}
