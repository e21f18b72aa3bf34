package recommend

import (
	"fmt"
	"strings"

	"github.com/futurelink/pathfinder/internal/catalog"
)

const systemPrompt = `You are a warm, encouraging career guidance counselor for Thai high-school students.

Rules:
- You receive a student's answers to a four-question self-assessment quiz.
- Respond entirely in Thai.
- Suggest 2-4 careers, 2-3 fields of study, and 2-3 development activities that genuinely fit the answers.
- Keep every description short (one or two sentences) and age-appropriate.
- The summary should be positive and specific to this student, never generic filler.
- Derive userInsights (aptitudes, interests, likes) from the answers as short phrases.
- Never invent facts about the student beyond what the answers support.`

// buildUserMessage formats the completed answers for the model.
func buildUserMessage(answers catalog.Answers) string {
	var b strings.Builder

	b.WriteString("คำตอบแบบประเมินตนเองของนักเรียน:\n")
	fmt.Fprintf(&b, "กิจกรรมที่ชอบ: %s\n", answers.Activity)
	fmt.Fprintf(&b, "วิชาที่ชอบ: %s\n", answers.Subject)
	fmt.Fprintf(&b, "สไตล์การทำงาน: %s\n", answers.WorkStyle)
	fmt.Fprintf(&b, "สิ่งที่อยากแก้ไขในโลก: %s\n", answers.Passion)

	return b.String()
}
