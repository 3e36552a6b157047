package domain

import "time"

// AppInfo is the copy shown on the landing and sign-in screens. Only one
// document is active at a time.
type AppInfo struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Version          string    `json:"version"`
	JoinMessage      string    `json:"joinMessage"`
	JoinTitle        string    `json:"joinTitle"`
	NextEventMessage string    `json:"nextEventMessage"`
	SignInMessage    string    `json:"signInMessage"`
	SignInTitle      string    `json:"signInTitle"`
	WhatDoWeDo       string    `json:"whatDoWeDo"`
	WhoAre           string    `json:"whoAre"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AdminStats summarizes the catalog for the admin dashboard.
type AdminStats struct {
	TotalEvents       int              `json:"totalEvents"`
	UpcomingEvents    int              `json:"upcomingEvents"`
	PastEvents        int              `json:"pastEvents"`
	FullEvents        int              `json:"fullEvents"`
	TotalParticipants int              `json:"totalParticipants"`
	TotalCapacity     int              `json:"totalCapacity"`
	AverageFill       float64          `json:"averageFill"`
	ByCategory        map[Category]int `json:"byCategory"`
	ByZone            map[Zone]int     `json:"byZone"`
	ActiveSessions    int              `json:"activeSessions"`
	CatalogVersion    uint64           `json:"catalogVersion"`
}
