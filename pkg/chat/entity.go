package chat

import "strings"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Welcome is the seeded first message of every new conversation.
const Welcome = "Hi! I’m Nexus AI — your intelligent assistant. How can I help you today?"

// Turn is one message in a conversation. A turn carries its text as a small
// ordered list of fragments; insertion order is significant.
type Turn struct {
	Role  Role     `json:"role"`
	Parts []string `json:"parts"`
}

// NewTurn builds a single-fragment turn.
func NewTurn(role Role, text string) Turn {
	return Turn{Role: role, Parts: []string{text}}
}

// Text joins the turn's fragments with single spaces.
func (t Turn) Text() string {
	return strings.Join(t.Parts, " ")
}

// Transcript is the ordered turn history of one client session.
type Transcript struct {
	Turns []Turn `json:"turns"`
}

// NewTranscript returns a transcript seeded with the welcome turn.
func NewTranscript() Transcript {
	return Transcript{Turns: []Turn{NewTurn(RoleModel, Welcome)}}
}

// Append adds a turn to the end of the transcript.
func (tr *Transcript) Append(t Turn) {
	tr.Turns = append(tr.Turns, t)
}

// Len reports the number of turns.
func (tr Transcript) Len() int { return len(tr.Turns) }

// Last returns the final turn; ok is false when the transcript is empty.
func (tr Transcript) Last() (Turn, bool) {
	if len(tr.Turns) == 0 {
		return Turn{}, false
	}
	return tr.Turns[len(tr.Turns)-1], true
}

// Window returns a transcript holding at most the latest limit turns.
// limit <= 0 disables windowing.
func (tr Transcript) Window(limit int) Transcript {
	if limit <= 0 || len(tr.Turns) <= limit {
		return tr
	}
	return Transcript{Turns: tr.Turns[len(tr.Turns)-limit:]}
}
