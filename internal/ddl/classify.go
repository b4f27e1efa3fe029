package ddl

import "strings"

// Class is the outcome of classifying an execution failure
type Class int

const (
	// Genuine failures abort the session
	Genuine Class = iota
	// BenignAlreadyExists means the object was created by an earlier run
	BenignAlreadyExists
)

func (c Class) String() string {
	if c == BenignAlreadyExists {
		return "already-exists"
	}
	return "genuine"
}

// DefaultPhrases are the message fragments that signal an existing object.
var DefaultPhrases = []string{"already exists", "exists already", "already present"}

// Classifier decides whether an execution failure only reports an object that
// already exists. Codes are matched against the value returned by Code;
// Phrases are matched case-insensitively against the error message.
type Classifier struct {
	Code    func(error) string
	Codes   map[string]bool
	Phrases []string
}

// NewClassifier returns a Classifier that uses code to extract backend status
// codes and treats the given codes plus DefaultPhrases as benign.
func NewClassifier(code func(error) string, codes ...string) *Classifier {
	c := &Classifier{
		Code:    code,
		Codes:   make(map[string]bool, len(codes)),
		Phrases: append([]string(nil), DefaultPhrases...),
	}
	for _, k := range codes {
		c.Codes[k] = true
	}
	return c
}

// Classify reports whether err is a benign already-exists condition.
func (c *Classifier) Classify(err error) Class {
	if err == nil {
		return Genuine
	}

	if c.Code != nil && len(c.Codes) > 0 {
		if code := c.Code(err); code != "" && c.Codes[code] {
			return BenignAlreadyExists
		}
	}

	msg := strings.ToLower(err.Error())
	for _, p := range c.Phrases {
		if p != "" && strings.Contains(msg, strings.ToLower(p)) {
			return BenignAlreadyExists
		}
	}
	return Genuine
}
