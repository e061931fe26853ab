package profile

// DefaultTeacher returns the teacher record used until the educator sets
// their own, and whenever the stored one is missing or unreadable.
func DefaultTeacher() Teacher {
	return Teacher{
		Name:              "Educator",
		TeachingStyle:     "Socratic (Question-driven)",
		ComfortSubjects:   []string{"General Literature", "Critical Thinking"},
		CommunicationTone: "Encouraging Mentor",
	}
}

// SeedLearners returns the built-in sample profiles shown before any user
// data exists. Returned fresh on each call so callers can mutate safely.
func SeedLearners() []Learner {
	return []Learner{
		{
			ID:              "p1",
			Name:            "Yuki",
			Age:             16,
			NativeLanguage:  "Japanese",
			Culture:         "Japanese contemporary",
			CognitiveStyle:  StyleVisual,
			Interests:       []string{"Manga", "Technology", "Nature", "Minimalism"},
			VoicePreference: "Kore",
			Library:         []LibraryEntry{},
		},
		{
			ID:              "p2",
			Name:            "Mateo",
			Age:             14,
			NativeLanguage:  "Spanish (Mexican)",
			Culture:         "Mexican urban",
			CognitiveStyle:  StyleNarrative,
			Interests:       []string{"Soccer", "Family traditions", "Cooking", "Music"},
			VoicePreference: "Fenrir",
			Library:         []LibraryEntry{},
		},
		{
			ID:              "p3",
			Name:            "Alex",
			Age:             10,
			NativeLanguage:  "English",
			Culture:         "Internet/Gaming",
			CognitiveStyle:  StyleLiteral,
			Interests:       []string{"Minecraft", "Trains", "Systems engineering", "Sci-Fi"},
			VoicePreference: "Puck",
			Library:         []LibraryEntry{},
		},
	}
}

// Voices lists the prebuilt TTS voices a learner can prefer.
var Voices = []string{"Puck", "Charon", "Kore", "Fenrir", "Zephyr"}

// TeachingStyles lists the suggested teaching styles. The field itself is
// free text; these are the options offered in the editor.
var TeachingStyles = []string{
	"Socratic (Question-driven)",
	"Storytelling (Narrative)",
	"Direct Instruction (Lecture)",
	"Project-Based (Hands-on)",
	"Analogy-Heavy (Comparative)",
	"Gamified (Playful)",
}

// CommunicationTones lists the suggested communication tones.
var CommunicationTones = []string{
	"Encouraging Mentor",
	"Strict but Fair",
	"Academic & Formal",
	"Casual & Relatable",
	"Enthusiastic & High Energy",
}

// SampleTopics are the demo lesson topics offered in the input screen.
var SampleTopics = []string{
	"The Water Cycle and Weather Patterns",
	"Photosynthesis: How Plants Eat",
	"The Causes of the French Revolution",
	"Introduction to Fractions and Decimals",
	"Newton's Laws of Motion",
	"The Solar System and Space Exploration",
	"Ancient Egyptian Civilization",
	"The Concept of Democracy",
	"Ecosystems and Food Webs",
	"Plate Tectonics and Volcanoes",
	"The Hero's Journey in Literature",
	"Basic Economics: Supply and Demand",
}

// DemoText is the sample excerpt loaded by the "text demo" action.
const DemoText = `I met a traveller from an antique land,
Who said—"Two vast and trunkless legs of stone
Stand in the desert. . . . Near them, on the sand,
Half sunk a shattered visage lies, whose frown,
And wrinkled lip, and sneer of cold command,
Tell that its sculptor well those passions read
Which yet survive, stamped on these lifeless things,
The hand that mocked them, and the heart that fed;
And on the pedestal, these words appear:
My name is Ozymandias, King of Kings;
Look on my Works, ye Mighty, and despair!
Nothing beside remains. Round the decay
Of that colossal Wreck, boundless and bare
The lone and level sands stretch far away."`
