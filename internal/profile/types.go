package profile

// CognitiveStyle describes a learner's preferred mode of understanding.
type CognitiveStyle string

const (
	StyleLiteral   CognitiveStyle = "Literal/Structured"
	StyleAbstract  CognitiveStyle = "Abstract/Conceptual"
	StyleVisual    CognitiveStyle = "Visual/Spatial"
	StyleNarrative CognitiveStyle = "Narrative/Social"
	StyleAuditory  CognitiveStyle = "Auditory/Musical"
)

// CognitiveStyles lists all styles in display order.
var CognitiveStyles = []CognitiveStyle{
	StyleLiteral,
	StyleAbstract,
	StyleVisual,
	StyleNarrative,
	StyleAuditory,
}

// Analysis holds the three heuristic fit scores for one card,
// each an integer in [1, 100].
type Analysis struct {
	CulturalResonance    int `json:"culturalResonance"`
	CognitiveFit         int `json:"cognitiveFit"`
	VocabularyComplexity int `json:"vocabularyComplexity"`
}

// Card is one AI-generated explanation variant paired with a reflection
// question and fit scores. Immutable once created.
type Card struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	ReframedText       string   `json:"reframedText"`
	ReflectionQuestion string   `json:"reflectionQuestion"`
	Analysis           Analysis `json:"analysis"`
}

// LibraryEntry is one saved generation session: the input text plus the
// cards it produced, in generation order. Immutable except for deletion.
type LibraryEntry struct {
	ID         string `json:"id"`
	Timestamp  int64  `json:"timestamp"` // epoch millis
	SourceText string `json:"sourceText"`
	Cards      []Card `json:"cards"`
}

// Learner is one learner profile. The embedded library is ordered newest
// first and is always non-nil after a repository read.
type Learner struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Age             int            `json:"age"`
	NativeLanguage  string         `json:"nativeLanguage"`
	Culture         string         `json:"culture"`
	CognitiveStyle  CognitiveStyle `json:"cognitiveStyle"`
	Interests       []string       `json:"interests"`
	VoicePreference string         `json:"voicePreference"`
	Library         []LibraryEntry `json:"library"`
}

// Teacher is the singleton teacher profile. Overwritten wholesale on save;
// there is no delete, only replace.
type Teacher struct {
	Name              string   `json:"name"`
	TeachingStyle     string   `json:"teachingStyle"`
	ComfortSubjects   []string `json:"comfortSubjects"`
	CommunicationTone string   `json:"communicationTone"`
}
