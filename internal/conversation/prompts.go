package conversation

import (
	"fmt"
	"strings"

	"github.com/prepcoach/prepcoach/internal/domain"
)

// Prompts are fixed per phase. Re-prompts for a missing slot are worded
// identically no matter how many times they are repeated.

const greetingPrompt = `Hello! I'm your interview preparation coach. I build personalized study plans for technical interviews.

Would you like to start preparing? Just say "I want to prepare for interviews" or tell me about your goals.`

const domainPrompt = `Great, let's build your preparation plan. Which interview domains would you like to focus on? You can choose several:

- Algorithms (data structures, coding problems)
- System Design (architecture, distributed systems)
- Databases (SQL, NoSQL, schema design)
- Machine Learning (ML algorithms, data science)
- Behavioral (soft skills, situational questions)
- Frontend (JavaScript, React, UI)
- Backend (APIs, microservices)

Name the domains that interest you, or say "all" for comprehensive preparation.`

const skillPrompt = `What's your current skill level in these areas?

- Beginner: new to the field, learning fundamentals
- Intermediate: some experience, comfortable with basics
- Advanced: experienced, looking to master complex topics`

const stylePrompt = `What's your preferred learning style?

- Theory-heavy: focus on concepts and understanding
- Coding-heavy: emphasis on practice problems and hands-on work
- Balanced: a mix of theory and practice
- Project-based: learn by building real projects`

const generatingPrompt = `Your preparation plan is being generated. You'll be notified when it is ready, or you can poll the task status.`

const donePrompt = `Your preparation plan is complete. Start a new topic any time you want a fresh plan.`

// confirmingPrompt summarizes the collected selections and asks the user to
// confirm before generation starts.
func confirmingPrompt(sel domain.Selections) string {
	var names []string
	for _, d := range sel.Domains {
		names = append(names, titleCase(string(d)))
	}
	return fmt.Sprintf(`Here's what I've gathered:

- Domains: %s
- Skill level: %s
- Learning style: %s

I'm ready to create your personalized preparation plan. Reply "yes, create my plan" to begin.`,
		strings.Join(names, ", "),
		titleCase(string(sel.SkillLevel)),
		titleCase(string(sel.LearningStyle)))
}

// titleCase turns an enum value like "system_design" into "System Design".
func titleCase(v string) string {
	words := strings.Split(strings.ReplaceAll(v, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// promptFor returns the prompt appropriate for a session sitting in phase.
func promptFor(phase domain.Phase, sel domain.Selections) string {
	switch phase {
	case domain.PhaseGreeting:
		return greetingPrompt
	case domain.PhaseDomainSelection:
		return domainPrompt
	case domain.PhaseSkillLevel:
		return skillPrompt
	case domain.PhaseLearningStyle:
		return stylePrompt
	case domain.PhaseConfirming:
		return confirmingPrompt(sel)
	case domain.PhaseGenerating:
		return generatingPrompt
	case domain.PhaseDone:
		return donePrompt
	}
	return ""
}
