package lockscreen

import "testing"

func TestShakeOffsetEndpoints(t *testing.T) {
	if got := shakeOffset(0); got != shakeKeyframes[0] {
		t.Errorf("shakeOffset(0) = %v, want %v", got, shakeKeyframes[0])
	}
	if got := shakeOffset(1); got != 0 {
		t.Errorf("shakeOffset(1) = %v, want 0 (dialog must land back in place)", got)
	}
	if got := shakeOffset(-0.5); got != shakeKeyframes[0] {
		t.Errorf("shakeOffset(-0.5) = %v, want clamp to first keyframe", got)
	}
	if got := shakeOffset(1.5); got != 0 {
		t.Errorf("shakeOffset(1.5) = %v, want clamp to last keyframe", got)
	}
}

func TestShakeOffsetHitsKeyframes(t *testing.T) {
	last := len(shakeKeyframes) - 1
	for i, want := range shakeKeyframes {
		progress := float32(i) / float32(last)
		if got := shakeOffset(progress); got != want {
			t.Errorf("shakeOffset(%v) = %v, want keyframe %v", progress, got, want)
		}
	}
}

func TestShakeOffsetInterpolatesBetweenKeyframes(t *testing.T) {
	// Halfway between the first two keyframes (10 and -10).
	last := float32(len(shakeKeyframes) - 1)
	got := shakeOffset(0.5 / last)
	if got != 0 {
		t.Errorf("midpoint of 10..-10 = %v, want 0", got)
	}
}

func TestShakeOffsetStaysBounded(t *testing.T) {
	for i := 0; i <= 100; i++ {
		p := float32(i) / 100
		off := shakeOffset(p)
		if off > 10 || off < -10 {
			t.Fatalf("shakeOffset(%v) = %v escapes the ±10 bound", p, off)
		}
	}
}
