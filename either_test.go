package csharpx

import "testing"

func TestEitherBasicOperations(t *testing.T) {
	t.Run("Left creates left value", func(t *testing.T) {
		e := Left[int, string](42)
		if !e.IsLeft() || e.IsRight() {
			t.Error("expected Left")
		}
		if e.LeftValue() != 42 {
			t.Errorf("expected 42, got %d", e.LeftValue())
		}
	})

	t.Run("Right creates right value", func(t *testing.T) {
		e := Right[int]("alternate")
		if e.IsLeft() || !e.IsRight() {
			t.Error("expected Right")
		}
		if e.RightValue() != "alternate" {
			t.Errorf("expected alternate, got %s", e.RightValue())
		}
	})

	t.Run("LeftValue panics on Right", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		e := Right[int]("alternate")
		e.LeftValue()
	})

	t.Run("RightValue panics on Left", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		e := Left[int, string](42)
		e.RightValue()
	})
}

func TestEitherDefaults(t *testing.T) {
	t.Run("LeftOr returns left value", func(t *testing.T) {
		e := Left[int, string](42)
		if e.LeftOr(0) != 42 {
			t.Error("expected left value")
		}
	})

	t.Run("LeftOr returns default on Right", func(t *testing.T) {
		e := Right[int]("alternate")
		if e.LeftOr(7) != 7 {
			t.Error("expected default")
		}
	})

	t.Run("RightOr returns right value", func(t *testing.T) {
		e := Right[int]("alternate")
		if e.RightOr("default") != "alternate" {
			t.Error("expected right value")
		}
	})

	t.Run("RightOr returns default on Left", func(t *testing.T) {
		e := Left[int, string](42)
		if e.RightOr("default") != "default" {
			t.Error("expected default")
		}
	})
}

func TestEitherMatch(t *testing.T) {
	t.Run("Match dispatches to onLeft", func(t *testing.T) {
		leftCalls, rightCalls := 0, 0
		Left[int, string](42).Match(
			func(v int) {
				leftCalls++
				if v != 42 {
					t.Errorf("expected 42, got %d", v)
				}
			},
			func(string) { rightCalls++ },
		)
		if leftCalls != 1 || rightCalls != 0 {
			t.Errorf("expected (1, 0) calls, got (%d, %d)", leftCalls, rightCalls)
		}
	})

	t.Run("Match dispatches to onRight", func(t *testing.T) {
		leftCalls, rightCalls := 0, 0
		Right[int]("alternate").Match(
			func(int) { leftCalls++ },
			func(string) { rightCalls++ },
		)
		if leftCalls != 0 || rightCalls != 1 {
			t.Errorf("expected (0, 1) calls, got (%d, %d)", leftCalls, rightCalls)
		}
	})

	t.Run("MatchEither returns branch result", func(t *testing.T) {
		got := MatchEither(Left[int, string](2),
			func(v int) int { return v * 10 },
			func(string) int { return -1 },
		)
		if got != 20 {
			t.Errorf("expected 20, got %d", got)
		}
	})
}

func TestEitherSwap(t *testing.T) {
	t.Run("Swap turns Left into Right", func(t *testing.T) {
		swapped := Left[int, string](42).Swap()
		if !swapped.IsRight() || swapped.RightValue() != 42 {
			t.Error("expected Right(42)")
		}
	})

	t.Run("Swap turns Right into Left", func(t *testing.T) {
		swapped := Right[int]("alternate").Swap()
		if !swapped.IsLeft() || swapped.LeftValue() != "alternate" {
			t.Error("expected Left(alternate)")
		}
	})
}
