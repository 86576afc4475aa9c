// Package catalog holds the fixed list of gentle actions and the
// per-mood candidate pools drawn from it.
package catalog

import "github.com/julianstephens/anchor/internal/models"

// actions is ordered; backfill walks it by index so the order must not change.
var actions = []models.Action{
	{ID: "breath_30", Title: "30-second breathing (4-4-6)"},
	{ID: "breath_2", Title: "Two minutes of slow breathing"},
	{ID: "water", Title: "Drink a glass of water"},
	{ID: "tea", Title: "Make a warm tea (no rush)"},
	{ID: "stand", Title: "Stand up and stretch for one minute"},
	{ID: "walk_3", Title: "Walk for three minutes"},
	{ID: "sunlight", Title: "Get near daylight for one minute"},
	{ID: "open_window", Title: "Open a window for fresh air"},
	{ID: "shower", Title: "Wash your face or take a quick refresh"},
	{ID: "music", Title: "Play one calming song"},
	{ID: "tidy_1", Title: "Tidy one small area (30 seconds)"},
	{ID: "one_sentence", Title: "Write one sentence about how you feel"},
	{ID: "name_emotion", Title: "Name the emotion (e.g., anxious, tired, lonely)"},
	{ID: "body_scan", Title: "Do a one-minute body scan"},
	{ID: "ground_5", Title: "5-4-3-2-1 grounding (one round)"},
	{ID: "shoulders", Title: "Relax your shoulders and jaw (three breaths)"},
	{ID: "hand_on_heart", Title: "Hand on heart: “I’m here with you.”"},
	{ID: "kind_words", Title: "Say one kind sentence to yourself"},
	{ID: "mini_break", Title: "Take a two-minute pause (no phone)"},
	{ID: "task_next", Title: "Write the next tiny step for one task"},
	{ID: "task_pause", Title: "Choose one thing to not do today"},
	{ID: "message_friend", Title: "Send a gentle message to someone you trust"},
	{ID: "ask_help", Title: "Ask for help with one specific thing"},
	{ID: "gratitude_1", Title: "Write one thing you’re grateful for"},
	{ID: "win_1", Title: "Write one small win from today"},
	{ID: "self_compassion", Title: "Self-compassion: “This is hard, and I’m doing my best.”"},
	{ID: "snack", Title: "Have a small snack if you’re hungry"},
	{ID: "posture", Title: "Reset posture: feet on the floor, sit tall"},
	{ID: "screen_break", Title: "Look away from the screen for 20 seconds"},
	{ID: "plan_sleep", Title: "Set a gentle bedtime reminder"},
	{ID: "note_trigger", Title: "Note one possible trigger (no judgment)"},
	{ID: "comfort_item", Title: "Hold a comfort item (blanket, plush, pillow)"},
	{ID: "short_walk_out", Title: "Step outside (even just the doorway)"},
	{ID: "stretch_neck", Title: "Slow neck stretch (left/right)"},
	{ID: "3_good_things", Title: "Write three good things (tiny counts)"},
}

var pools = map[models.Mood][]string{
	models.MoodHappy:    {"win_1", "gratitude_1", "walk_3", "sunlight", "message_friend", "3_good_things"},
	models.MoodCalm:     {"body_scan", "breath_2", "mini_break", "shoulders", "hand_on_heart", "screen_break"},
	models.MoodNeutral:  {"water", "stand", "screen_break", "task_next", "tidy_1", "one_sentence"},
	models.MoodSad:      {"hand_on_heart", "kind_words", "comfort_item", "music", "one_sentence", "message_friend"},
	models.MoodTired:    {"water", "snack", "stand", "open_window", "screen_break", "plan_sleep"},
	models.MoodAnxious:  {"breath_30", "ground_5", "shoulders", "body_scan", "hand_on_heart", "open_window"},
	models.MoodStressed: {"breath_2", "task_next", "task_pause", "mini_break", "open_window", "note_trigger"},
	models.MoodAngry:    {"breath_30", "walk_3", "shoulders", "open_window", "one_sentence", "ground_5"},
	models.MoodUnknown:  {"breath_30", "water", "stand", "one_sentence", "mini_break", "screen_break"},
}

var byID = func() map[string]models.Action {
	m := make(map[string]models.Action, len(actions))
	for _, a := range actions {
		m[a.ID] = a
	}
	return m
}()

// All returns a copy of the catalog in its fixed order.
func All() []models.Action {
	out := make([]models.Action, len(actions))
	copy(out, actions)
	return out
}

// IDs returns the catalog ids in their fixed order.
func IDs() []string {
	ids := make([]string, len(actions))
	for i, a := range actions {
		ids[i] = a.ID
	}
	return ids
}

// Size returns the number of catalog entries
func Size() int {
	return len(actions)
}

// Lookup returns the action with the given id
func Lookup(id string) (models.Action, bool) {
	a, ok := byID[id]
	return a, ok
}

// Contains reports whether id is a catalog entry
func Contains(id string) bool {
	_, ok := byID[id]
	return ok
}

// Pool returns a copy of the candidate ids curated for a mood.
// Moods without a pool of their own use the unknown pool.
func Pool(mood models.Mood) []string {
	p, ok := pools[mood]
	if !ok {
		p = pools[models.MoodUnknown]
	}
	out := make([]string, len(p))
	copy(out, p)
	return out
}

// Resolve maps ids to actions, dropping ids that are not in the catalog.
func Resolve(ids []string) []models.Action {
	out := make([]models.Action, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}
