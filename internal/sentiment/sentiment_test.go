package sentiment

import "testing"

func TestLexiconScorer_Polarity(t *testing.T) {
	s := NewLexiconScorer()

	tests := []struct {
		name string
		text string
		sign int
	}{
		{"positive headline", "Record profit surge after strong earnings beat", 1},
		{"negative headline", "Shares plunge as company warns of steep losses", -1},
		{"neutral headline", "Company holds annual shareholder meeting", 0},
		{"empty text", "", 0},
		{"mixed leans negative", "Profit gains erased by fraud investigation", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.text)
			switch {
			case tt.sign > 0 && got <= 0:
				t.Errorf("Score(%q) = %v, want > 0", tt.text, got)
			case tt.sign < 0 && got >= 0:
				t.Errorf("Score(%q) = %v, want < 0", tt.text, got)
			case tt.sign == 0 && got != 0:
				t.Errorf("Score(%q) = %v, want 0", tt.text, got)
			}
		})
	}
}

func TestLexiconScorer_Bounds(t *testing.T) {
	s := NewLexiconScorer()
	texts := []string{
		"surge surge surge rally rally boom soars record profit growth win",
		"crash crash plunge bankruptcy fraud default crisis losses layoffs",
	}
	for _, text := range texts {
		if got := s.Score(text); got < -1 || got > 1 {
			t.Errorf("Score(%q) = %v, outside [-1, 1]", text, got)
		}
	}
}

func TestLexiconScorer_Negation(t *testing.T) {
	s := NewLexiconScorer()

	plain := s.Score("growth expected this quarter")
	negated := s.Score("no growth expected this quarter")
	if plain <= 0 {
		t.Fatalf("expected positive base score, got %v", plain)
	}
	if negated >= 0 {
		t.Errorf("expected negation to flip the sign, got %v", negated)
	}
}

func TestLexiconScorer_Deterministic(t *testing.T) {
	s := NewLexiconScorer()
	text := "Revenue growth slows as debt fears rise"
	first := s.Score(text)
	for i := 0; i < 10; i++ {
		if got := s.Score(text); got != first {
			t.Fatalf("score changed across calls: %v vs %v", first, got)
		}
	}
}

func TestScorerFunc(t *testing.T) {
	var called string
	f := ScorerFunc(func(text string) float64 {
		called = text
		return 0.5
	})
	if got := f.Score("hello"); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
	if called != "hello" {
		t.Errorf("expected adapter to pass text through, got %q", called)
	}
}
