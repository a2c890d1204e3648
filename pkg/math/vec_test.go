package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{0.25, 0.5}
	b := Vec2{0.5, 0.25}
	got := a.Add(b)
	want := Vec2{0.75, 0.75}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Clamp01(t *testing.T) {
	v := Vec2{-0.5, 1.5}
	got := v.Clamp01()
	want := Vec2{0, 1}
	if got != want {
		t.Errorf("Vec2.Clamp01() = %v, want %v", got, want)
	}

	inside := Vec2{0.3, 0.7}
	if inside.Clamp01() != inside {
		t.Errorf("Vec2.Clamp01() altered an in-range vector: %v", inside.Clamp01())
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{1, 0.5}
	got := a.Lerp(b, 0.5)
	want := Vec2{0.5, 0.25}
	if got != want {
		t.Errorf("Vec2.Lerp() = %v, want %v", got, want)
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct {
		in   float32
		want float32
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Errorf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
