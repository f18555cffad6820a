// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Emotion is the main reason recorded for a crying session.
type Emotion string

const (
	EmotionOverwhelmed        Emotion = "OVERWHELMED"
	EmotionMissingSomeone     Emotion = "MISSING_SOMEONE"
	EmotionStress             Emotion = "STRESS"
	EmotionLoneliness         Emotion = "LONELINESS"
	EmotionRelationshipIssues Emotion = "RELATIONSHIP_ISSUES"
	EmotionSadness            Emotion = "SADNESS"
	EmotionJoy                Emotion = "JOY"
	EmotionProud              Emotion = "PROUD"
	EmotionNoReason           Emotion = "NO_REASON"
)

// Valid reports whether e is one of the known emotions.
func (e Emotion) Valid() bool {
	switch e {
	case EmotionOverwhelmed, EmotionMissingSomeone, EmotionStress,
		EmotionLoneliness, EmotionRelationshipIssues, EmotionSadness,
		EmotionJoy, EmotionProud, EmotionNoReason:
		return true
	}
	return false
}

// Feeling intensity bounds (inclusive).
const (
	MinFeelingIntensity = 1
	MaxFeelingIntensity = 10
)

// JournalEntry is the plaintext view of a mood-journal entry (a "cry").
// Callers only ever see this type; the encrypted row never leaves the
// service layer.
type JournalEntry struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	CriedAt          time.Time `json:"cried_at"`
	Emotion          Emotion   `json:"emotions"`
	FeelingIntensity int       `json:"feeling_intensity"`
	Thoughts         string    `json:"thoughts"`
	RecentSmileThing string    `json:"recent_smile_thing"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// JournalEntryRow is the stored shape of a journal entry (table cries).
// Every *Enc column holds an independent envelope; ids and timestamps stay
// plaintext for indexing and ordering.
type JournalEntryRow struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	CriedAt             time.Time `json:"cried_at"`
	EmotionsEnc         string    `json:"emotions_enc"`
	FeelingIntensityEnc string    `json:"feeling_intensity_enc"`
	ThoughtsEnc         string    `json:"thoughts_enc"`
	RecentSmileThingEnc string    `json:"recent_smile_thing_enc"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the JournalEntryRow model.
func (r JournalEntryRow) TableName() string {
	return "cries"
}
