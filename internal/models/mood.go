package models

// Mood is one of the canonical mood categories a check-in resolves to
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodCalm     Mood = "calm"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodTired    Mood = "tired"
	MoodAnxious  Mood = "anxious"
	MoodStressed Mood = "stressed"
	MoodAngry    Mood = "angry"
	MoodUnknown  Mood = "unknown"
)

// Moods lists every category in normalizer priority order, unknown last.
var Moods = []Mood{
	MoodHappy,
	MoodCalm,
	MoodNeutral,
	MoodSad,
	MoodTired,
	MoodAnxious,
	MoodStressed,
	MoodAngry,
	MoodUnknown,
}

// IsElevated reports whether the mood calls for the larger suggestion set
func (m Mood) IsElevated() bool {
	return m == MoodAnxious || m == MoodStressed || m == MoodAngry
}

func (m Mood) String() string {
	return string(m)
}

// ParseMood returns the category with the exact given name.
func ParseMood(s string) (Mood, bool) {
	for _, m := range Moods {
		if string(m) == s {
			return m, true
		}
	}
	return MoodUnknown, false
}
