package worksheet

import (
	"fmt"
	"strings"
)

// Labels holds every fixed string printed on a sheet.
type Labels struct {
	PracticeTitle      string
	SolutionTitle      string
	Name               string
	Date               string
	Answer             string
	Explanation        string
	GeneralExplanation string

	// General is the header for exercises without a sub-topic.
	General string

	// Blank is the underline printed after the name and date labels.
	Blank string
}

// German returns the labels used on German sheets. This is the default.
func German() Labels {
	return Labels{
		PracticeTitle:      "Übungsblatt",
		SolutionTitle:      "Lösungsblatt",
		Name:               "Name:",
		Date:               "Datum:",
		Answer:             "Lösung:",
		Explanation:        "Erklärung:",
		GeneralExplanation: "Allgemeine Erklärung:",
		General:            "Allgemein",
		Blank:              "_______________________________",
	}
}

// English returns the labels used on English sheets.
func English() Labels {
	return Labels{
		PracticeTitle:      "Practice Sheet",
		SolutionTitle:      "Solution Sheet",
		Name:               "Name:",
		Date:               "Date:",
		Answer:             "Solution:",
		Explanation:        "Explanation:",
		GeneralExplanation: "General explanation:",
		General:            "General",
		Blank:              "_______________________________",
	}
}

// Languages lists the accepted language codes.
var Languages = []string{"de", "en"}

// LabelsFor returns the labels for a language code ("de" or "en").
func LabelsFor(lang string) (Labels, error) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "", "de":
		return German(), nil
	case "en":
		return English(), nil
	}
	return Labels{}, fmt.Errorf("unsupported language %q (want one of %s)", lang, strings.Join(Languages, ", "))
}
