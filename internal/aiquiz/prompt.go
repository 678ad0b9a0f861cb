package aiquiz

import (
	"fmt"
	"strings"
)

const (
	defaultCount      = 3
	maxCount          = 10
	defaultDifficulty = "medium"
)

const systemPrompt = `
You write multiple choice questions for the final assessment of an online course.

Questions must be clear, fair and test real understanding of the topic.

Rules:
1. Every question has exactly one correct alternative.
2. Difficulty is one of easy, medium or hard.
3. Every question has:
   - "question": the statement
   - "alternatives": 4 plausible options, including the correct one
   - "correct_answer": the letter of the correct alternative
   - "explanation": a short explanation of the correct answer

Expected JSON:

[
  {
    "topic": "<topic>",
    "difficulty": "<easy | medium | hard>",
    "question": "<question text>",
    "alternatives": [
      "A) ...",
      "B) ...",
      "C) ...",
      "D) ..."
    ],
    "correct_answer": "C",
    "explanation": "<why this alternative is correct>"
  }
]

Quality:
- Do not make the correct answer obvious. Alternatives have similar length and structure.
- Use plausible distractors.
- easy: definitions and basic concepts. medium: applying concepts. hard: analysis and deduction.
- Never reveal the answer in the statement.
- Reply with pure valid JSON and nothing else.
`

// BuildUserPrompt clamps the requested count to 1..10 and defaults the difficulty to medium.
func BuildUserPrompt(req DraftRequest) string {
	count := req.Count
	if count <= 0 {
		count = defaultCount
	}
	if count > maxCount {
		count = maxCount
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write %d multiple choice questions about %q with %s difficulty. ", count, req.Topic, difficulty)
	if ctx := strings.TrimSpace(req.Context); ctx != "" {
		fmt.Fprintf(&b, "Ground the questions in this course material: %s. ", ctx)
	}
	b.WriteString("Follow the format from the system prompt exactly.")
	return b.String()
}
