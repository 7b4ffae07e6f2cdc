package exercise

// SamplePayload is a small payload with both record shapes. It is printed
// by the sample command and used as a fixture in tests.
const SamplePayload = `{
  "metadata": {
    "topic": "Nomen und Artikel",
    "grade": "4. Klasse",
    "subject": "Deutsch",
    "subtopics": ["Plural", "Artikel", "Merkwörter"]
  },
  "exercises": [
    {
      "id": 1,
      "type": "Unterstreichen",
      "subtopic": "Plural",
      "question": "Unterstreiche alle Pluralformen in diesem Satz:",
      "sub_questions": [
        {
          "question": "\"Die Katzen jagen Mäuse, und die Hunde bellen laut.\"",
          "answer": "Katzen, Mäuse, Hunde (unterstrichen)",
          "explanation": "Diese Wörter stehen im Plural."
        },
        {
          "question": "\"Die Kinder spielen mit ihren Bällen im Garten.\"",
          "answer": "Kinder, Bällen (unterstrichen)",
          "explanation": "Kinder und Bällen sind Pluralformen."
        }
      ],
      "explanation": "Pluralformen erkennt man oft an der Endung und dem Artikel 'die'."
    },
    {
      "id": 2,
      "type": "Ankreuzen (Multiple Choice)",
      "subtopic": "Artikel",
      "question": "Welcher Artikel passt zu 'Baum'?",
      "options": ["der", "die", "das"],
      "answer": "der",
      "explanation": "Baum ist maskulin, daher verwendet man den Artikel 'der'."
    },
    {
      "id": 3,
      "type": "Formbildung/Variation",
      "subtopic": "Plural",
      "question": "Bilde die Pluralform:",
      "sub_questions": [
        {
          "question": "Der Apfel → ___",
          "answer": "Die Äpfel",
          "explanation": "Bei 'Apfel' wird ein Umlaut verwendet: a → ä."
        },
        {
          "question": "Das Kind → ___",
          "answer": "Die Kinder",
          "explanation": "Bei 'Kind' wird -er angehängt."
        }
      ]
    }
  ]
}
`
