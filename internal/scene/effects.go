package scene

import "github.com/ayusman/mudra/internal/gesture"

// Effect identifies a scene-wide visual effect.
type Effect string

const (
	EffectNone          Effect = ""
	EffectTreeReform    Effect = "tree_reform"
	EffectHeartMorph    Effect = "heart_morph"
	EffectTextMorph     Effect = "text_morph"
	EffectOrnamentCycle Effect = "ornament_cycle"
	EffectSpotlightOn   Effect = "spotlight_on"
	EffectSpotlightOff  Effect = "spotlight_off"
)

// effectForLabel maps stable gestures to the effect they trigger.
// Pan/zoom/pinch gestures deliberately have no entry; they drive
// continuous control instead.
var effectForLabel = map[gesture.Label]Effect{
	gesture.LabelClosedFist: EffectTreeReform,
	gesture.LabelILoveYou:   EffectHeartMorph,
	gesture.LabelVictory:    EffectTextMorph,
	gesture.LabelPointingUp: EffectOrnamentCycle,
	gesture.LabelThumbUp:    EffectSpotlightOn,
	gesture.LabelThumbDown:  EffectSpotlightOff,
}

// Director turns the per-tick stable gesture stream into one-shot
// effect triggers. An effect fires only when its gesture newly becomes
// stable; holding the gesture does not re-fire, and re-triggering
// requires the stable label to lapse first.
type Director struct {
	prevStable gesture.Label
	current    Effect
}

// NewDirector creates a Director with no active effect.
func NewDirector() *Director {
	return &Director{prevStable: gesture.LabelNone}
}

// Observe records the stable label for this tick. It returns the
// effect to trigger and true exactly once per stable-label entry.
func (d *Director) Observe(stable gesture.Label) (Effect, bool) {
	defer func() { d.prevStable = stable }()

	if stable == d.prevStable {
		return EffectNone, false
	}

	effect, ok := effectForLabel[stable]
	if !ok {
		return EffectNone, false
	}

	d.current = effect
	return effect, true
}

// Current returns the most recently triggered effect.
func (d *Director) Current() Effect {
	return d.current
}
