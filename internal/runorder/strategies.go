package runorder

import (
	"sort"

	"rundown/internal/detect"
	"rundown/internal/evidence"
)

// pairEvent is one strategy-level observation of a team pair.
type pairEvent struct {
	Pair      PairKey
	Timestamp float64
}

// scoreboardOrder implements the first-appearance strategy: scoreboard
// detections are grouped by team pair, each pair keyed by its earliest
// timestamp, and pairs are ordered by that timestamp. Scoreboard overlays
// persist through a match's highlights, making this the most data-abundant
// signal.
func scoreboardOrder(detections []detect.Detection) []pairEvent {
	earliest := make(map[PairKey]float64)
	for _, detection := range detections {
		if detection.Source != evidence.RegionScoreboard {
			continue
		}
		pair := NewPairKey(detection.Home.Team, detection.Away.Team)
		if current, seen := earliest[pair]; !seen || detection.SceneStart < current {
			earliest[pair] = detection.SceneStart
		}
	}
	events := make([]pairEvent, 0, len(earliest))
	for pair, timestamp := range earliest {
		events = append(events, pairEvent{Pair: pair, Timestamp: timestamp})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Timestamp != events[j].Timestamp {
			return events[i].Timestamp < events[j].Timestamp
		}
		return events[i].Pair < events[j].Pair
	})
	return events
}

// fullTimeEvents implements the full-time anchor strategy: full-time
// graphic detections sorted by timestamp, collapsed so that consecutive
// detections of the same pair within windowSeconds count as one logical
// event. Freeze-frames render the same graphic across many consecutive
// frames; without the window each would register as its own event.
func fullTimeEvents(detections []detect.Detection, windowSeconds float64) []pairEvent {
	var fullTime []detect.Detection
	for _, detection := range detections {
		if detection.Source == evidence.RegionFullTimeScore {
			fullTime = append(fullTime, detection)
		}
	}
	sort.Slice(fullTime, func(i, j int) bool {
		if fullTime[i].SceneStart != fullTime[j].SceneStart {
			return fullTime[i].SceneStart < fullTime[j].SceneStart
		}
		return fullTime[i].SceneNumber < fullTime[j].SceneNumber
	})

	var events []pairEvent
	lastRetained := make(map[PairKey]float64)
	var previousPair PairKey
	for _, detection := range fullTime {
		pair := NewPairKey(detection.Home.Team, detection.Away.Team)
		retainedAt, seen := lastRetained[pair]
		if seen && pair == previousPair && detection.SceneStart-retainedAt <= windowSeconds {
			previousPair = pair
			continue
		}
		events = append(events, pairEvent{Pair: pair, Timestamp: detection.SceneStart})
		lastRetained[pair] = detection.SceneStart
		previousPair = pair
	}
	return events
}

// fullTimeOrder reduces the event stream to unique pairs in first-event order.
func fullTimeOrder(events []pairEvent) []pairEvent {
	seen := make(map[PairKey]struct{}, len(events))
	ordered := make([]pairEvent, 0, len(events))
	for _, event := range events {
		if _, dup := seen[event.Pair]; dup {
			continue
		}
		seen[event.Pair] = struct{}{}
		ordered = append(ordered, event)
	}
	return ordered
}

func pairs(events []pairEvent) []PairKey {
	keys := make([]PairKey, 0, len(events))
	for _, event := range events {
		keys = append(keys, event.Pair)
	}
	return keys
}
