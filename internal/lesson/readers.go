package lesson

import (
	"context"
	"encoding/json"
	"log"
	"sort"
)

// Archive projects every stored record into an ArchiveEntry, newest date
// first. Any enumeration or parse failure blanks the whole listing — the
// caller always gets a well-formed (possibly empty) slice, never an error.
func Archive(ctx context.Context, s Store) []ArchiveEntry {
	records, err := s.List(ctx)
	if err != nil {
		log.Printf("archive: reading store: %v", err)
		return []ArchiveEntry{}
	}

	out := make([]ArchiveEntry, 0, len(records))
	for date, raw := range records {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Printf("archive: parsing %s: %v", date, err)
			return []ArchiveEntry{}
		}
		topic := rec.Topic
		if topic == "" {
			topic = "Untitled"
		}
		out = append(out, ArchiveEntry{
			Topic:   topic,
			Summary: rec.Summary,
			Quiz:    rec.Quiz,
			Date:    date,
		})
	}

	// Fixed-width YYYY-MM-DD keys make lexicographic order chronological.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// History projects every stored record into a HistoryEntry, newest date
// first. Same fail-closed behavior as Archive.
func History(ctx context.Context, s Store) []HistoryEntry {
	records, err := s.List(ctx)
	if err != nil {
		log.Printf("history: reading store: %v", err)
		return []HistoryEntry{}
	}

	out := make([]HistoryEntry, 0, len(records))
	for date, raw := range records {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Printf("history: parsing %s: %v", date, err)
			return []HistoryEntry{}
		}
		topic := rec.Topic
		if topic == "" {
			topic = "Untitled"
		}
		out = append(out, HistoryEntry{
			Topic: topic,
			Date:  date,
			Score: rec.Score,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
