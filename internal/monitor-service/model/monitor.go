package model

import "time"

type Monitor struct {
	ID                        string `gorm:"default:(-)"`
	Name                      string
	RequestID                 string
	UserID                    string
	IntervalMinutes           int
	ThresholdMs               int
	IsActive                  bool
	ConsecutiveFailures       int
	LastRun                   *time.Time
	NextRun                   *time.Time
	LastEmailSent             *time.Time
	EmailNotificationsEnabled bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// MonitorWithOwner is a monitor joined with its owner's contact details and target url.
type MonitorWithOwner struct {
	Monitor
	OwnerEmail string
	OwnerName  string
	RequestURL string
}
