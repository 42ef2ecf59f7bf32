package textutil

import (
	"math"
	"testing"
)

func TestRatioIdentical(t *testing.T) {
	for _, s := range []string{"матрица", "harry potter", "x"} {
		if got := Ratio(s, s); got != 1.0 {
			t.Errorf("Ratio(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestRatioEmpty(t *testing.T) {
	if got := Ratio("", ""); got != 1.0 {
		t.Errorf("Ratio of two empty strings = %v, want 1.0", got)
	}
	if got := Ratio("пила", ""); got != 0.0 {
		t.Errorf("Ratio against empty string = %v, want 0.0", got)
	}
}

func TestRatioDisjoint(t *testing.T) {
	if got := Ratio("abc", "xyz"); got != 0.0 {
		t.Errorf("Ratio(disjoint) = %v, want 0.0", got)
	}
}

func TestRatioPartial(t *testing.T) {
	// "abcd" vs "bcde": matching blocks total 3 ("bcd"), ratio 2*3/8.
	want := 0.75
	if got := Ratio("abcd", "bcde"); math.Abs(got-want) > 1e-9 {
		t.Errorf("Ratio(abcd, bcde) = %v, want %v", got, want)
	}
}

func TestRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"звёздные войны", "звездные войны"},
		{"матрица", "матрица перезагрузка"},
		{"пила", "пила 2"},
	}
	for _, p := range pairs {
		ab := Ratio(p[0], p[1])
		ba := Ratio(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Ratio not symmetric for %q/%q: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarityNormalizes(t *testing.T) {
	if got := Similarity("«Матрица»", "фильм МАТРИЦА"); got != 1.0 {
		t.Errorf("Similarity(quoted, noisy) = %v, want 1.0", got)
	}
}

func TestSimilarityOrdering(t *testing.T) {
	query := "гарри поттер"
	near := Similarity(query, "Гарри Поттер и философский камень")
	far := Similarity(query, "Властелин колец")
	if near <= far {
		t.Errorf("expected %q to score closer than %q: %v <= %v", "Гарри Поттер и философский камень", "Властелин колец", near, far)
	}
}
