package ddl

import (
	"errors"
	"fmt"
	"testing"
)

type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string { return e.msg }

func codeOf(err error) string {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return ""
}

func TestClassify(t *testing.T) {
	t.Parallel()

	c := NewClassifier(codeOf, "pg:42P07", "mysql:1050")

	tests := []struct {
		name string
		err  error
		want Class
	}{
		{name: "already exists", err: errors.New(`relation "t" already exists`), want: BenignAlreadyExists},
		{name: "upper case", err: errors.New("TABLE T ALREADY EXISTS"), want: BenignAlreadyExists},
		{name: "exists already", err: errors.New("Object Exists Already"), want: BenignAlreadyExists},
		{name: "already present", err: errors.New("table t is Already Present in catalog"), want: BenignAlreadyExists},
		{name: "wrapped phrase", err: fmt.Errorf("sqlite: exec: %w", errors.New("table t already exists")), want: BenignAlreadyExists},
		{name: "known code", err: &codedError{code: "pg:42P07", msg: "duplicate"}, want: BenignAlreadyExists},
		{name: "wrapped code", err: fmt.Errorf("exec: %w", &codedError{code: "mysql:1050", msg: "x"}), want: BenignAlreadyExists},
		{name: "unknown code", err: &codedError{code: "pg:42601", msg: "syntax error"}, want: Genuine},
		{name: "syntax error", err: errors.New("syntax error at or near GEOMETRY"), want: Genuine},
		{name: "exists alone", err: errors.New("column exists"), want: Genuine},
		{name: "nil", err: nil, want: Genuine},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := c.Classify(tt.err); got != tt.want {
				t.Fatalf("Classify(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyCustomPhrases(t *testing.T) {
	t.Parallel()

	c := &Classifier{Phrases: []string{"duplicate table"}}
	if got := c.Classify(errors.New("Duplicate Table t")); got != BenignAlreadyExists {
		t.Errorf("Classify() = %s, want %s", got, BenignAlreadyExists)
	}
	if got := c.Classify(errors.New("t already exists")); got != Genuine {
		t.Errorf("Classify() = %s, want %s with custom phrases only", got, Genuine)
	}
}
