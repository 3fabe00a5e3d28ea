// Package soul renders a completed questionnaire into a SOUL.md document.
package soul

import (
	"fmt"
	"strings"
)

const (
	// Filename is the suggested name for an exported document.
	Filename = "SOUL.md"

	// NoSignaturePlaceholder replaces an empty signature section.
	NoSignaturePlaceholder = "_No signature defined._"
)

// AnswerSet is the complete set of answers for one soul.
type AnswerSet struct {
	Name        string
	Personality string
	Values      string
	Tone        string
	Backstory   string
	Signature   string
}

// Render builds the document. It is pure: equal answer sets always produce
// byte-identical output.
// Structure: [Header] + [Identity] + [Communication Style] + [Backstory] + [Signature]
func Render(answers AnswerSet) string {
	sections := []string{
		buildHeader(answers),
		buildIdentity(answers),
		section("Communication Style", answers.Tone),
		section("Backstory", answers.Backstory),
		buildSignature(answers),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func buildHeader(a AnswerSet) string {
	return fmt.Sprintf("# %s - %s\n\n_This file defines who %s is: personality, values, voice and history._",
		Filename, a.Name, a.Name)
}

func buildIdentity(a AnswerSet) string {
	var b strings.Builder
	b.WriteString("## Identity\n\n")
	fmt.Fprintf(&b, "- **Name:** %s\n", a.Name)
	fmt.Fprintf(&b, "- **Personality:** %s\n", a.Personality)
	fmt.Fprintf(&b, "- **Core Values:** %s", a.Values)
	return b.String()
}

func buildSignature(a AnswerSet) string {
	signature := strings.TrimSpace(a.Signature)
	if signature == "" {
		signature = NoSignaturePlaceholder
	}
	return section("Signature", signature)
}

func section(title, body string) string {
	return "## " + title + "\n\n" + strings.TrimSpace(body)
}
