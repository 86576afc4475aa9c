package constants

// KeyPair is the current and legacy storage key of one persisted record.
type KeyPair struct {
	Current string
	Legacy  string
}

var (
	DailyKeys = KeyPair{
		Current: "anchor.gentleActions.v1",
		Legacy:  "moodbuddy.gentleActions.v1",
	}
	HistoryKeys = KeyPair{
		Current: "anchor.gentleActions.history.v1",
		Legacy:  "moodbuddy.gentleActions.history.v1",
	}
	StatsKeys = KeyPair{
		Current: "anchor.gentleActions.completionStats.v1",
		Legacy:  "moodbuddy.gentleActions.completionStats.v1",
	}
	StageKeys = KeyPair{
		Current: "anchor.gentleActions.stage.v1",
		Legacy:  "moodbuddy.gentleActions.stage.v1",
	}

	// RecordKeys lists every persisted record, used by export and doctor
	RecordKeys = []KeyPair{DailyKeys, HistoryKeys, StatsKeys, StageKeys}
)

// CheckInKeys are probed in order for the latest mood check-in.
// Current-format keys come before legacy ones.
var CheckInKeys = []string{
	"anchor.checkin.latest.v1",
	"anchor.checkin.v1",
	"anchor.checkin.latest",
	"anchor.checkin",
	"moodbuddy.checkin.latest.v1",
	"moodbuddy.checkin.v1",
	"moodbuddy.checkin.latest",
	"moodbuddy.checkin",
}

// CheckInWriteKey is where `anchor checkin` records the latest mood
const CheckInWriteKey = "anchor.checkin.latest.v1"

// CheckInMoodFields are read in order from a check-in record
var CheckInMoodFields = []string{"mood", "moodId", "moodLabel", "emotion", "feeling"}
