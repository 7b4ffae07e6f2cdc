package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/worksheetgen/internal/catalog"
)

// Distribution summarises how many exercises and questions a prompt asks for.
type Distribution struct {
	Subtopics int
	Types     int
	PerTask   int

	Exercises int
	Questions int
}

// Distribute computes the distribution: one exercise per sub-topic and
// exercise type, each with Count questions.
func Distribute(p Params) Distribution {
	d := Distribution{
		Subtopics: len(p.EffectiveSubtopics()),
		Types:     len(p.ExerciseTypes),
		PerTask:   p.Count,
	}
	d.Exercises = d.Subtopics * d.Types
	d.Questions = d.Exercises * d.PerTask
	return d
}

// Build assembles the prompt text pasted into the AI chat. p should have
// passed Validate.
func Build(p Params, cat *catalog.Catalog) string {
	subtopics := p.EffectiveSubtopics()
	d := Distribute(p)

	var sb strings.Builder

	fmt.Fprintf(&sb, "Erstelle Übungsaufgaben für die %s im Fach %s zum Hauptthema %q.\n\n",
		strings.TrimSpace(p.Grade), strings.TrimSpace(p.Subject), strings.TrimSpace(p.Topic))

	sb.WriteString("Unterthemen:\n")
	for _, s := range subtopics {
		fmt.Fprintf(&sb, "- %s\n", s)
	}

	sb.WriteString("\nAufgabentypen:\n")
	for _, t := range p.ExerciseTypes {
		if desc := cat.Describe(t); desc != "" {
			fmt.Fprintf(&sb, "- %s: %s\n", t, desc)
		} else {
			fmt.Fprintf(&sb, "- %s\n", t)
		}
	}

	sb.WriteString("\nAufgabenverteilung:\n")
	fmt.Fprintf(&sb, "- Erstelle für jedes der %d Unterthemen genau eine Aufgabe pro Aufgabentyp (%d Aufgabentypen).\n",
		d.Subtopics, d.Types)
	fmt.Fprintf(&sb, "- Jede Aufgabe enthält %d Teilfragen.\n", d.PerTask)
	fmt.Fprintf(&sb, "- Insgesamt %d Aufgaben mit %d Fragen.\n", d.Exercises, d.Questions)

	sb.WriteString("\nAntwortformat:\n")
	sb.WriteString("Antworte ausschließlich mit gültigem JSON, ohne Markdown und ohne weiteren Text, in genau diesem Format:\n\n")
	sb.WriteString(exampleJSON(p, subtopics))
	sb.WriteString("\n\nRegeln:\n")
	sb.WriteString("- \"metadata\" übernimmt Thema, Klasse, Fach und Unterthemen wörtlich.\n")
	sb.WriteString("- \"id\" zählt fortlaufend ab 1.\n")
	sb.WriteString("- \"subtopic\" ist genau eines der Unterthemen.\n")
	sb.WriteString("- \"question\" ist die gemeinsame Arbeitsanweisung, die Teilfragen stehen in \"sub_questions\".\n")
	sb.WriteString("- Jede Teilfrage hat \"question\", \"answer\" und eine kurze \"explanation\".\n")
	sb.WriteString("- Bei Multiple Choice stehen die Antwortmöglichkeiten in \"options\", und \"answer\" ist wörtlich eine davon.\n")
	sb.WriteString("- Antworten und Erklärungen sind kurz und altersgerecht.\n")

	return sb.String()
}

type exampleSubQuestion struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

type exampleExercise struct {
	ID           int                  `json:"id"`
	Type         string               `json:"type"`
	Subtopic     string               `json:"subtopic"`
	Question     string               `json:"question"`
	SubQuestions []exampleSubQuestion `json:"sub_questions"`
	Explanation  string               `json:"explanation"`
}

type exampleMetadata struct {
	Topic     string   `json:"topic"`
	Grade     string   `json:"grade"`
	Subject   string   `json:"subject"`
	Subtopics []string `json:"subtopics"`
}

type examplePayload struct {
	Metadata  exampleMetadata   `json:"metadata"`
	Exercises []exampleExercise `json:"exercises"`
}

func exampleJSON(p Params, subtopics []string) string {
	payload := examplePayload{
		Metadata: exampleMetadata{
			Topic:     strings.TrimSpace(p.Topic),
			Grade:     strings.TrimSpace(p.Grade),
			Subject:   strings.TrimSpace(p.Subject),
			Subtopics: subtopics,
		},
		Exercises: []exampleExercise{{
			ID:       1,
			Type:     p.ExerciseTypes[0],
			Subtopic: subtopics[0],
			Question: "Arbeitsanweisung für alle Teilfragen",
			SubQuestions: []exampleSubQuestion{
				{Question: "Teilfrage 1", Answer: "Lösung 1", Explanation: "Kurze Erklärung"},
				{Question: "Teilfrage 2", Answer: "Lösung 2", Explanation: "Kurze Erklärung"},
			},
			Explanation: "Allgemeine Erklärung zur Aufgabe",
		}},
	}

	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		// Only plain strings and ints are encoded.
		panic(fmt.Sprintf("prompt: encode example: %v", err))
	}
	return strings.TrimRight(sb.String(), "\n")
}
