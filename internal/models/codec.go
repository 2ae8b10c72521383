package models

import "encoding/json"

// The nested record fields are stored as JSON inside single columns.
// Decoding never fails: unreadable data comes back empty.

func EncodeEmotions(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

func DecodeEmotions(data []byte) []string {
	var list []string
	if err := json.Unmarshal(data, &list); err != nil || list == nil {
		return []string{}
	}
	return list
}

func EncodeNotes(notes map[string]string) ([]byte, error) {
	if notes == nil {
		notes = map[string]string{}
	}
	return json.Marshal(notes)
}

func DecodeNotes(data []byte) map[string]string {
	var notes map[string]string
	if err := json.Unmarshal(data, &notes); err != nil || notes == nil {
		return map[string]string{}
	}
	return notes
}

func EncodeTagMap(m map[string][]string) ([]byte, error) {
	if m == nil {
		m = map[string][]string{}
	}
	return json.Marshal(m)
}

func DecodeTagMap(data []byte) map[string][]string {
	var m map[string][]string
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return map[string][]string{}
	}
	return m
}
