package chat

import "strings"

// Assemble flattens a transcript into the linear text prompt the completion
// model consumes. Every turn except the last is rendered as "<role>: <text>"
// on its own line; the final line is always framed as the user's utterance,
// whatever the last turn's actual role. Text is passed through unescaped.
func Assemble(tr Transcript) (string, error) {
	if len(tr.Turns) == 0 {
		return "", ErrEmptyTranscript
	}
	var sb strings.Builder
	for _, t := range tr.Turns[:len(tr.Turns)-1] {
		sb.WriteString(string(t.Role))
		sb.WriteString(": ")
		sb.WriteString(t.Text())
		sb.WriteString("\n")
	}
	last := tr.Turns[len(tr.Turns)-1]
	sb.WriteString("user: ")
	sb.WriteString(last.Text())
	sb.WriteString("\n")
	return sb.String(), nil
}
