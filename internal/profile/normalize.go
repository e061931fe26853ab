package profile

import "encoding/json"

// rawLearner mirrors Learner but defers library decoding, so a malformed
// or missing library never rejects an otherwise valid profile.
type rawLearner struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Age             int             `json:"age"`
	NativeLanguage  string          `json:"nativeLanguage"`
	Culture         string          `json:"culture"`
	CognitiveStyle  CognitiveStyle  `json:"cognitiveStyle"`
	Interests       []string        `json:"interests"`
	VoicePreference string          `json:"voicePreference"`
	Library         json.RawMessage `json:"library"`
}

// DecodeLearners parses a stored or imported profiles array, applying the
// normalization pass to every profile. Unknown fields are ignored.
func DecodeLearners(data []byte) ([]Learner, error) {
	var raws []rawLearner
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	learners := make([]Learner, len(raws))
	for i, r := range raws {
		learners[i] = r.normalize()
	}
	return learners, nil
}

// normalize converts a rawLearner into a Learner, coercing a missing or
// non-list library into an empty list. Applied on every read path, not
// just once.
func (r rawLearner) normalize() Learner {
	var library []LibraryEntry
	if len(r.Library) > 0 {
		if err := json.Unmarshal(r.Library, &library); err != nil {
			library = nil
		}
	}
	if library == nil {
		library = []LibraryEntry{}
	}

	return Learner{
		ID:              r.ID,
		Name:            r.Name,
		Age:             r.Age,
		NativeLanguage:  r.NativeLanguage,
		Culture:         r.Culture,
		CognitiveStyle:  r.CognitiveStyle,
		Interests:       r.Interests,
		VoicePreference: r.VoicePreference,
		Library:         library,
	}
}
