package api

import "time"

type Report struct {
	ID         string    `json:"id"`
	TeamID     string    `json:"team_id"`
	Year       int       `json:"year"`
	WeekNumber int       `json:"week_number"`
	WeekStart  time.Time `json:"week_start"`
	WeekEnd    time.Time `json:"week_end"`
}

type CreateReportRequest struct {
	Year       int       `json:"year"`
	WeekNumber int       `json:"week_number"`
	WeekStart  time.Time `json:"week_start"`
}

type Error struct {
	Message string `json:"message"`
}
