package scene

import (
	"testing"

	"github.com/ayusman/mudra/internal/gesture"
)

func TestDirector_FiresOnNewStableLabel(t *testing.T) {
	d := NewDirector()

	effect, fired := d.Observe(gesture.LabelILoveYou)
	if !fired {
		t.Fatal("expected effect on newly stable label")
	}
	if effect != EffectHeartMorph {
		t.Errorf("effect = %q, want %q", effect, EffectHeartMorph)
	}
}

func TestDirector_HoldDoesNotRefire(t *testing.T) {
	d := NewDirector()

	d.Observe(gesture.LabelVictory)
	for i := 0; i < 10; i++ {
		if _, fired := d.Observe(gesture.LabelVictory); fired {
			t.Fatalf("held label re-fired on observation %d", i)
		}
	}
}

func TestDirector_RefiresAfterLapse(t *testing.T) {
	d := NewDirector()

	d.Observe(gesture.LabelClosedFist)
	d.Observe(gesture.LabelNone)

	effect, fired := d.Observe(gesture.LabelClosedFist)
	if !fired {
		t.Fatal("expected effect to re-fire after lapse")
	}
	if effect != EffectTreeReform {
		t.Errorf("effect = %q, want %q", effect, EffectTreeReform)
	}
}

func TestDirector_ControlGesturesHaveNoEffect(t *testing.T) {
	d := NewDirector()

	for _, label := range []gesture.Label{
		gesture.LabelNone,
		gesture.LabelOpenPalm,
		gesture.LabelPinch,
	} {
		d.Observe(gesture.LabelNone)
		if effect, fired := d.Observe(label); fired {
			t.Errorf("label %q triggered effect %q, want none", label, effect)
		}
	}
}

func TestDirector_Mapping(t *testing.T) {
	tests := []struct {
		label gesture.Label
		want  Effect
	}{
		{gesture.LabelClosedFist, EffectTreeReform},
		{gesture.LabelILoveYou, EffectHeartMorph},
		{gesture.LabelVictory, EffectTextMorph},
		{gesture.LabelPointingUp, EffectOrnamentCycle},
		{gesture.LabelThumbUp, EffectSpotlightOn},
		{gesture.LabelThumbDown, EffectSpotlightOff},
	}

	for _, tt := range tests {
		d := NewDirector()
		effect, fired := d.Observe(tt.label)
		if !fired || effect != tt.want {
			t.Errorf("Observe(%q) = (%q, %v), want (%q, true)", tt.label, effect, fired, tt.want)
		}
		if d.Current() != tt.want {
			t.Errorf("Current() after %q = %q, want %q", tt.label, d.Current(), tt.want)
		}
	}
}
