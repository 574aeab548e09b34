package scoring

import "testing"

func TestInterpretBandBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Level
	}{
		{0, Beginning},
		{24, Beginning},
		{25, Developing},
		{49, Developing},
		{50, Advancing},
		{74, Advancing},
		{75, Leading},
		{100, Leading},
	}
	for _, tc := range cases {
		got := Interpret(tc.score, "levelai")
		if got.Level != tc.want {
			t.Errorf("Interpret(%d) = %s, want %s", tc.score, got.Level, tc.want)
		}
	}
}

func TestInterpretMonotonic(t *testing.T) {
	prev := Interpret(0, "levelai").Level
	for score := 1; score <= 100; score++ {
		level := Interpret(score, "levelai").Level
		if level < prev {
			t.Fatalf("level decreased at score %d: %s -> %s", score, prev, level)
		}
		prev = level
	}
}

func TestInterpretThemeCopy(t *testing.T) {
	levelai := Interpret(80, "levelai")
	tech4good := Interpret(80, "tech4good")
	if levelai.Message == tech4good.Message {
		t.Error("expected independently authored copy per theme")
	}
	if levelai.LevelTag != "Leading" || tech4good.LevelTag != "Leading" {
		t.Errorf("tier must not vary by theme: %s vs %s", levelai.LevelTag, tech4good.LevelTag)
	}
}

//
// raise only authors the top tier; every other band falls back to
// the default theme's copy
//
func TestInterpretRaiseFallback(t *testing.T) {
	raise := Interpret(30, "raise")
	levelai := Interpret(30, "levelai")
	if raise.Message != levelai.Message {
		t.Errorf("expected fallback copy, got %q", raise.Message)
	}

	topRaise := Interpret(90, "raise")
	if topRaise.Priority != "Share your learnings and pursue RAISE certification" {
		t.Errorf("raise top-tier priority = %q", topRaise.Priority)
	}
}

func TestInterpretUnknownTheme(t *testing.T) {
	unknown := Interpret(60, "no-such-theme")
	levelai := Interpret(60, "levelai")
	if unknown.Message != levelai.Message {
		t.Error("unknown themes must fall back to default copy")
	}
}
