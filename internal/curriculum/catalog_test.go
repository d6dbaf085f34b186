package curriculum

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/sqlcoach/internal/sqltext"
)

func TestDefault_Counts(t *testing.T) {
	c := Default()
	if got := len(c.Phases()); got != 4 {
		t.Errorf("got %d phases, want 4", got)
	}
	if got := c.Total(); got != 13 {
		t.Errorf("got %d lessons, want 13", got)
	}
}

func TestDefault_FirstLesson(t *testing.T) {
	c := Default()
	if got := c.First(); got != "1.1" {
		t.Errorf("First() = %q, want %q", got, "1.1")
	}
	l, p, err := c.Get("1.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 {
		t.Errorf("phase = %d, want 1", p.ID)
	}
	if len(l.Hints) != 3 {
		t.Errorf("lesson 1.1 has %d hints, want 3", len(l.Hints))
	}
}

func TestGet_NotFound(t *testing.T) {
	_, _, err := Default().Get("9.9")
	if !errors.Is(err, ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestNext_DeclarationOrder(t *testing.T) {
	c := Default()
	want := []string{"1.1", "1.2", "1.3", "1.4", "2.1", "2.2", "2.3", "3.1", "3.2", "3.3", "4.1", "4.2", "4.3"}
	id := c.First()
	for i, w := range want {
		if id != w {
			t.Fatalf("step %d: got %q, want %q", i, id, w)
		}
		next, ok := c.Next(id)
		if i == len(want)-1 {
			if ok {
				t.Fatalf("Next(%q) should report no next lesson, got %q", id, next)
			}
			break
		}
		if !ok {
			t.Fatalf("Next(%q) reported end early", id)
		}
		id = next
	}
}

func TestNext_Unknown(t *testing.T) {
	if _, ok := Default().Next("nope"); ok {
		t.Error("Next on unknown id should report false")
	}
}

func TestPosition(t *testing.T) {
	c := Default()
	if got := c.Position("2.1"); got != 5 {
		t.Errorf("Position(2.1) = %d, want 5", got)
	}
	if got := c.Position("x"); got != 0 {
		t.Errorf("Position(x) = %d, want 0", got)
	}
}

func TestLessons_StepsGrowAndEndWithAnswer(t *testing.T) {
	for _, l := range Default().Lessons() {
		if len(l.SolutionSteps) < 1 {
			t.Errorf("lesson %q has no steps", l.ID)
			continue
		}
		for i := 1; i < len(l.SolutionSteps); i++ {
			if len(l.SolutionSteps[i]) < len(l.SolutionSteps[i-1]) {
				t.Errorf("lesson %q: step %d shorter than step %d", l.ID, i+1, i)
			}
		}
		last := l.SolutionSteps[len(l.SolutionSteps)-1]
		if sqltext.Normalize(last) != sqltext.Normalize(l.Answer) {
			t.Errorf("lesson %q: last step %q does not match answer", l.ID, last)
		}
	}
}

func TestNew_DetectsDuplicateID(t *testing.T) {
	l := Lesson{ID: "a", Hints: []string{"h"}, SolutionSteps: []string{"select 1"}, Answer: "select 1;"}
	_, err := New([]Phase{{ID: 1, Lessons: []Lesson{l, l}}})
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestNew_DetectsMismatchedFinalStep(t *testing.T) {
	l := Lesson{ID: "a", Hints: []string{"h"}, SolutionSteps: []string{"select 1"}, Answer: "select 2"}
	_, err := New([]Phase{{ID: 1, Lessons: []Lesson{l}}})
	if err == nil || !strings.Contains(err.Error(), "final step") {
		t.Fatalf("expected final step error, got %v", err)
	}
}

func TestNew_DetectsShrinkingSteps(t *testing.T) {
	l := Lesson{ID: "a", Hints: []string{"h"}, SolutionSteps: []string{"select 1 from t", "select 1"}, Answer: "select 1"}
	_, err := New([]Phase{{ID: 1, Lessons: []Lesson{l}}})
	if err == nil || !strings.Contains(err.Error(), "shorter") {
		t.Fatalf("expected shorter-step error, got %v", err)
	}
}

func TestNew_RejectsEmpty(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for empty curriculum")
	}
}

func TestParse_BadYAML(t *testing.T) {
	if _, err := Parse([]byte("phases: [")); err == nil {
		t.Fatal("expected decode error")
	}
}
