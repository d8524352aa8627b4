// Package prompt assembles the natural-language prompts sent to the
// generation service. Compilation is pure string construction: identical
// inputs always produce byte-identical prompts.
package prompt

import (
	"fmt"
	"strings"

	"github.com/kalambet/certpath/internal/profile"
)

// The directives instruct the model to return a self-contained HTML
// fragment the page can inject directly.
const roadmapDirectives = `**IMPORTANT**: Return a self-contained HTML fragment only.
- Wrap each phase in <div class="roadmap-phase">...</div>.
- Use <h2>, <h3>, <ul>, <li> for structure.
- No external CSS or JS, just the fragment.`

const explanationDirectives = `**IMPORTANT**: Return a self-contained HTML fragment only.
- Wrap the explanation in appropriate HTML elements (e.g. <div>, <h2>, <p>).
- Do not include any extra text.`

// Roadmap compiles the certification-roadmap prompt for a profile and an
// optional timeframe. Every input is optional; an empty profile yields a
// generic prompt.
func Roadmap(p profile.Profile, timeframe string) string {
	var b strings.Builder
	b.WriteString("You are a cybersecurity career advisor with a fun and personal touch. ")
	b.WriteString("Based on the user's profile, generate a personalized certification roadmap and guidance, addressing the user by name when known.\n\n")
	b.WriteString(roadmapDirectives)
	b.WriteString("\n\nUser Profile:\n")
	if lines := p.Lines(); lines != "" {
		b.WriteString(lines)
		b.WriteString("\n")
	}
	if tf := strings.TrimSpace(timeframe); tf != "" {
		b.WriteString("Desired Roadmap Timeframe: ")
		b.WriteString(tf)
		b.WriteString("\n")
	}
	return b.String()
}

// Explanation compiles the tutorial-style explanation prompt for a topic
// title, with the profile as personalization context. The title must be
// validated by the caller; this function assumes it is non-blank.
func Explanation(title string, p profile.Profile) string {
	who := p.Name
	if who == "" {
		who = "the user"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Teach the topic '%s' in a concise, personal, and fun tutorial style for %s.\n", title, who)
	b.WriteString("User Profile:\n")
	if lines := p.Lines(); lines != "" {
		b.WriteString(lines)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(explanationDirectives)
	b.WriteString("\n\nProvide a short, clear explanation of this topic in the context of cybersecurity certifications and training.")
	return b.String()
}
