package command

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		kind     Kind
		arg      string
		implicit bool
	}{
		{"", Empty, "", false},
		{"   \t ", Empty, "", false},
		{"hint", Hint, "", false},
		{"HINT", Hint, "", false},
		{"stuck", Hint, "", false},
		{"help me", Hint, "", false},
		{"next", Next, "", false},
		{"answer", Answer, "", false},
		{"solution", Answer, "", false},
		{"explain", Explain, "", false},
		{"schema", Schema, "", false},
		{"tables", Tables, "", false},
		{"progress", Progress, "", false},
		{"skip", Skip, "", false},
		{"reset", Reset, "", false},
		{"help", Help, "", false},
		{"?", Help, "", false},
		{"clear", Clear, "", false},
		{"cls", Clear, "", false},
		{"quit", Quit, "", false},
		{"exit", Quit, "", false},
		{"q", Quit, "", false},
		{"  run SELECT 1;  ", Run, "SELECT 1;", false},
		{"RUN select 1", Run, "select 1", false},
		{"run", Usage, "run", false},
		{"lesson 2.1", Lesson, "2.1", false},
		{"Lesson   3.2 ", Lesson, "3.2", false},
		{"lesson", Usage, "lesson", false},
		{"SELECT * FROM campaigns", Run, "SELECT * FROM campaigns", true},
		{"with x as (select 1) select * from x", Run, "with x as (select 1) select * from x", true},
		{"delete from campaigns", Run, "delete from campaigns", true},
		{"runner", Unknown, "runner", false},
		{"lessons", Unknown, "lessons", false},
		{"foo bar", Unknown, "foo bar", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Parse(tt.in)
			if got.Kind != tt.kind {
				t.Errorf("Parse(%q).Kind = %v, want %v", tt.in, got.Kind, tt.kind)
			}
			if got.Arg != tt.arg {
				t.Errorf("Parse(%q).Arg = %q, want %q", tt.in, got.Arg, tt.arg)
			}
			if got.Implicit != tt.implicit {
				t.Errorf("Parse(%q).Implicit = %v, want %v", tt.in, got.Implicit, tt.implicit)
			}
		})
	}
}

func TestParse_RunKeepsArgumentCase(t *testing.T) {
	got := Parse("run SELECT Campaign_Name FROM campaigns WHERE status = 'ENABLED'")
	want := "SELECT Campaign_Name FROM campaigns WHERE status = 'ENABLED'"
	if got.Arg != want {
		t.Errorf("Arg = %q, want %q", got.Arg, want)
	}
}

func TestLooksLikeSQL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"select 1", true},
		{"UPDATE campaigns SET status = 'PAUSED'", true},
		{"insert into t values (1)", true},
		{"something with words", true},
		{"pragma table_info(campaigns)", false},
		{"hello", false},
	}
	for _, tt := range tests {
		if got := LooksLikeSQL(tt.in); got != tt.want {
			t.Errorf("LooksLikeSQL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if Run.String() != "run" || Quit.String() != "quit" {
		t.Errorf("unexpected names: %q %q", Run.String(), Quit.String())
	}
}
