package domain

import (
	"fmt"
	"strings"
)

const (
	// Temperature is the sampling temperature sent with every question.
	Temperature float32 = 0.7

	EmptyAnswer  = "Désolé, je n'ai pas pu générer de réponse."
	FailedAnswer = "Une erreur est survenue lors de la communication avec l'assistant IA."
	BlankPrompt  = "Pose ta question (un concept, un exercice, une méthode) et je t'explique pas à pas."
)

// SystemInstruction frames the model as a BAC tutor for subject, or for
// every subject when subject is blank.
func SystemInstruction(subject string) string {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = "all subjects"
	}
	return fmt.Sprintf(`You are NAJAH AI, a specialized tutor for the Moroccan BAC (Baccalaureate).
Your goal is to help students understand concepts in %s.
Provide clear, structured explanations in French (or Arabic if requested).
Stay encouraging and focus on the Moroccan national curriculum.
If the user asks for a solution to a math or physics problem, explain the steps clearly.`, subject)
}

// Answer is what the student sees. Degraded marks a canned fallback.
type Answer struct {
	Text     string
	Degraded bool
}
