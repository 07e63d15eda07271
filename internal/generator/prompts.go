package generator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func ExamSystemPrompt() string {
	return "You are an exam creator. Create questions ONLY from the provided study material."
}

func SummarySystemPrompt() string {
	return "You are an expert educator who creates excellent study summaries."
}

func AdvisorSystemPrompt() string {
	return "You are a helpful study advisor."
}

// BuildExamPrompt constrains the model to produce count questions drawn
// exclusively from text, in the exact line format ParseQuizOutput expects.
func BuildExamPrompt(text string, count int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Create %d multiple-choice questions based EXCLUSIVELY on this study material:\n\n", count)
	sb.WriteString("STUDY MATERIAL:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nIMPORTANT RULES:\n")
	sb.WriteString("1. Questions MUST be directly from the provided text\n")
	sb.WriteString("2. Do NOT create general knowledge questions\n")
	sb.WriteString("3. Each question should test understanding of the material\n")
	sb.WriteString("4. Include detailed explanations\n\n")
	sb.WriteString("Format each question EXACTLY like this:\n")
	sb.WriteString("Question 1: [Question about the text]\n")
	sb.WriteString("A) [Option A from text]\n")
	sb.WriteString("B) [Option B from text]\n")
	sb.WriteString("C) [Option C from text]\n")
	sb.WriteString("D) [Option D from text]\n")
	sb.WriteString("Correct: [Letter]\n")
	sb.WriteString("Explain: [Explanation referencing the text]")

	return sb.String()
}

// BuildSummaryPrompt asks for a structured study summary of the material.
func BuildSummaryPrompt(topic, text string) string {
	var sb strings.Builder

	sb.WriteString("Analyze this study material and create a comprehensive, detailed summary:\n\n")
	fmt.Fprintf(&sb, "TOPIC: %s\n\n", topic)
	sb.WriteString("CONTENT:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nProvide a detailed summary with:\n")
	sb.WriteString("1. MAIN SUMMARY (2-3 paragraphs explaining the core concepts)\n")
	sb.WriteString("2. KEY POINTS (5-7 bullet points of the most important information)\n")
	sb.WriteString("3. IMPORTANT TERMS (key vocabulary with simple definitions)\n")
	sb.WriteString("4. PRACTICAL APPLICATIONS (how this knowledge is used in real life)\n")
	sb.WriteString("5. STUDY RECOMMENDATIONS (how to best learn this material)\n\n")
	sb.WriteString("Make it detailed, educational, and easy to understand.")

	return sb.String()
}

// suggestPromptLimit caps how much material goes into a topic-suggestion
// prompt.
const suggestPromptLimit = 1000

// BuildSuggestPrompt asks for study advice grounded in the material.
func BuildSuggestPrompt(text string) string {
	if utf8.RuneCountInString(text) > suggestPromptLimit {
		text = string([]rune(text)[:suggestPromptLimit])
	}

	var sb strings.Builder
	sb.WriteString("Analyze this study material and provide learning suggestions:\n\n")
	sb.WriteString(text)
	sb.WriteString("\n\nProvide practical study advice in a helpful format.")

	return sb.String()
}
