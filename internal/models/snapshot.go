package models

// Event is a live game event
type Event string

const (
	EventExceptionalXP         Event = "exceptional_xp"
	EventEpicQuestExtravaganza Event = "epic_quest_extravaganza"
	EventOneBeerTwoBeerFree    Event = "one_beer_two_beer_free_beer"
	EventGoldenFrenzy          Event = "golden_frenzy"
	EventTidyToiletTime        Event = "tidy_toilet_time"
)

// BeerEvents returns the events that raise the daily beer limit
func BeerEvents() []Event {
	return []Event{EventExceptionalXP, EventEpicQuestExtravaganza, EventOneBeerTwoBeerFree}
}

// Character is the player character
type Character struct {
	Name      string    `json:"name,omitempty"`
	Level     int       `json:"level"`
	Mushrooms int       `json:"mushrooms"`
	Silver    int       `json:"silver"`
	Equipment Equipment `json:"equipment"`
	Bag       Inventory `json:"bag"`
}

// Snapshot is the read-only account state for one tick.
// It is produced by the session and replaced wholesale on every poll.
type Snapshot struct {
	Account   string    `json:"account,omitempty"`
	Character Character `json:"character"`
	Tavern    Tavern    `json:"tavern"`
	Dungeons  Dungeons  `json:"dungeons"`
	Arena     Arena     `json:"arena"`
	Events    []Event   `json:"events,omitempty"`
}

// HasEvent reports whether e is currently active
func (s *Snapshot) HasEvent(e Event) bool {
	for _, active := range s.Events {
		if active == e {
			return true
		}
	}
	return false
}

// HasBeerEvent reports whether any event raising the beer limit is active
func (s *Snapshot) HasBeerEvent() bool {
	for _, e := range BeerEvents() {
		if s.HasEvent(e) {
			return true
		}
	}
	return false
}
