package email

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

// emailRegex is deliberately loose: something@something.something. RE2's
// \s is ASCII only, so Unicode spaces are rejected separately.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidAddress reports whether s looks like an email address. Any
// whitespace rune, including NBSP, vertical tab and line separators,
// makes it invalid. Submissions are checked with the same rule.
func ValidAddress(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) < 0 && emailRegex.MatchString(s)
}

// Address is a mailbox with an optional display name.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// String formats the address for a From or Reply-To header.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

// Message is a single outbound email with both an HTML and a text body.
type Message struct {
	To      string  `json:"to"`
	From    Address `json:"from"`
	ReplyTo string  `json:"reply_to,omitempty"`
	Subject string  `json:"subject"`
	HTML    string  `json:"-"`
	Text    string  `json:"-"`
	Tag     string  `json:"tag,omitempty"`
}

// Validate checks the fields a provider would reject.
func (m Message) Validate() error {
	var problems []string
	if !ValidAddress(m.To) {
		problems = append(problems, "invalid recipient")
	}
	if !ValidAddress(m.From.Email) {
		problems = append(problems, "invalid sender")
	}
	if m.ReplyTo != "" && !ValidAddress(m.ReplyTo) {
		problems = append(problems, "invalid reply-to")
	}
	if strings.TrimSpace(m.Subject) == "" {
		problems = append(problems, "empty subject")
	}
	if m.HTML == "" && m.Text == "" {
		problems = append(problems, "empty body")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidMessage, strings.Join(problems, ", "))
	}
	return nil
}
