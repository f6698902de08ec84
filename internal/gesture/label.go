// Package gesture turns a per-frame hand landmark stream into debounced
// discrete gesture events and continuous pan/zoom/rotation control signals.
package gesture

// Label identifies one discrete hand pose. Exactly one label is produced
// per processed frame; LabelNone means no hand or no recognizable pose.
type Label string

const (
	LabelNone       Label = "none"
	LabelOpenPalm   Label = "open_palm"
	LabelClosedFist Label = "closed_fist"
	LabelPointingUp Label = "pointing_up"
	LabelThumbUp    Label = "thumb_up"
	LabelThumbDown  Label = "thumb_down"
	LabelVictory    Label = "victory"
	LabelILoveYou   Label = "i_love_you"
	LabelPinch      Label = "pinch"
)

// streakThresholds holds the consecutive-frame count each label must
// sustain before it is reported stable. Fast-response gestures get low
// thresholds; accident-prone ones get high thresholds.
var streakThresholds = map[Label]int{
	LabelPinch:      2,
	LabelOpenPalm:   2,
	LabelClosedFist: 2,
	LabelVictory:    4,
	LabelThumbUp:    5,
	LabelThumbDown:  5,
	LabelILoveYou:   5,
}

const defaultStreakThreshold = 3

// StreakThreshold returns the number of identical consecutive frames
// required before the given label counts as stable.
func StreakThreshold(l Label) int {
	if t, ok := streakThresholds[l]; ok {
		return t
	}
	return defaultStreakThreshold
}
