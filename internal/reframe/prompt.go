// Package reframe turns a topic or text excerpt into personalized
// reframing cards by prompting an LLM with the learner and teacher
// profiles.
package reframe

import (
	"fmt"
	"strings"

	"github.com/abhisek/contextlens/internal/profile"
)

// cardCount is the number of cards requested per generation.
const cardCount = 5

// buildPrompt composes the instructional-design prompt. The input may be
// a specific text excerpt or a bare lesson topic; the model is told to
// distinguish the two.
func buildPrompt(input string, learner profile.Learner, teacher profile.Teacher) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are ContextLens, an advanced instructional design assistant.\n")
	fmt.Fprintf(&b, "Your task is to help a teacher named %s teach a concept to a student named %s.\n\n",
		teacher.Name, learner.Name)

	b.WriteString("The user input below might be a **Specific Text Excerpt** (e.g., a poem, a historical quote, a math problem) OR a **Lesson Topic/Idea** (e.g., \"Photosynthesis\", \"The causes of WWI\", \"Fractions\").\n\n")
	b.WriteString("1. **Analyze the Input**: Determine if it is a specific text to reframe, or a general topic to explain.\n")
	b.WriteString("2. **Bridge the Gap**: Connect the Student's context (for understanding) with the Teacher's style (for delivery).\n\n")

	b.WriteString("---\n")
	b.WriteString("TEACHER PROFILE (The Delivery Method):\n")
	fmt.Fprintf(&b, "- Style: %s\n", teacher.TeachingStyle)
	fmt.Fprintf(&b, "- Tone: %s\n", teacher.CommunicationTone)
	fmt.Fprintf(&b, "- Comfort Subjects: %s\n\n", strings.Join(teacher.ComfortSubjects, ", "))

	b.WriteString("STUDENT PROFILE (The Hook & Analogy Source):\n")
	fmt.Fprintf(&b, "- Age: %d\n", learner.Age)
	fmt.Fprintf(&b, "- Culture: %s\n", learner.Culture)
	fmt.Fprintf(&b, "- Cognitive Style: %s\n", learner.CognitiveStyle)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(learner.Interests, ", "))
	fmt.Fprintf(&b, "- Native Language: %s\n", learner.NativeLanguage)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "INPUT (Text or Lesson Idea):\n%q\n\n", input)

	b.WriteString("---\n")
	b.WriteString("TASK:\n")
	fmt.Fprintf(&b, "Generate %d distinct educational cards. Each card acts as a specific lesson plan snippet or explanation strategy.\n\n", cardCount)

	b.WriteString("REQUIREMENTS for each card:\n")
	b.WriteString("1. **The Hook**: Use the *Student's* interests/culture to create an analogy or entry point.\n")
	b.WriteString("2. **The Delivery**: Frame the explanation using the *Teacher's* specified style.\n")
	b.WriteString("3. **Content Handling**:\n")
	b.WriteString("   - If INPUT is a **Topic**: Generate a clear, age-appropriate explanation of that topic, then wrap it in the analogy.\n")
	b.WriteString("   - If INPUT is a **Text**: Keep the core meaning/structure of the text but \"translate\" the context/metaphors to fit the student.\n")
	b.WriteString("4. **Reflection**: A question for the student to answer to check understanding.\n")

	return b.String()
}
