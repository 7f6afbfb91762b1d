// Package model defines shared data structures.
package model

import "time"

// Entry is a single generated username paired with its source language.
type Entry struct {
	Username string
	LangCode string
	LangName string
}

// Batch captures the settings and results of one completed generation run.
type Batch struct {
	ID          int64
	GeneratedAt time.Time
	Count       int
	CaseStyle   string
	NumberStyle string
	MinLen      int
	Langs       []string
	Entries     []Entry
}

// BatchSummary is the per-batch row shown in the history list.
type BatchSummary struct {
	ID          int64
	GeneratedAt time.Time
	Count       int
	CaseStyle   string
	NumberStyle string
}

// LangCount aggregates how often a language produced a username.
type LangCount struct {
	LangName string
	Count    int
}
