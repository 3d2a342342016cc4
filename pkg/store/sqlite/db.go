package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const TeamsSchema = `
	CREATE TABLE IF NOT EXISTS teams (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		total_members INTEGER NOT NULL DEFAULT 0
	);
`

const UsersSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id VARCHAR PRIMARY KEY,
		team_id VARCHAR NOT NULL REFERENCES teams(id),
		name VARCHAR NOT NULL,
		position VARCHAR,
		display_order INTEGER NOT NULL DEFAULT 0
	);
`

const ChainsSchema = `
	CREATE TABLE IF NOT EXISTS chains (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		color VARCHAR,
		display_order INTEGER NOT NULL DEFAULT 0
	);
`

const ReportsSchema = `
	CREATE TABLE IF NOT EXISTS weekly_reports (
		id VARCHAR PRIMARY KEY,
		team_id VARCHAR NOT NULL REFERENCES teams(id),
		year INTEGER NOT NULL,
		week_number INTEGER NOT NULL,
		week_start TIMESTAMP NOT NULL,
		week_end TIMESTAMP NOT NULL,
		UNIQUE (team_id, year, week_number)
	);
`

const TasksSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id VARCHAR PRIMARY KEY,
		report_id VARCHAR NOT NULL REFERENCES weekly_reports(id),
		chain_id VARCHAR REFERENCES chains(id),
		title VARCHAR NOT NULL,
		purpose VARCHAR,
		start_date TIMESTAMP,
		end_date TIMESTAMP,
		display_order INTEGER NOT NULL DEFAULT 0,
		this_week_content VARCHAR,
		next_week_content VARCHAR,
		show_this_week_stats INTEGER NOT NULL DEFAULT 0,
		show_next_week_stats INTEGER NOT NULL DEFAULT 0,
		completed_count INTEGER,
		total_count INTEGER,
		progress INTEGER,
		next_completed_count INTEGER,
		next_total_count INTEGER,
		next_progress INTEGER
	);
`

const TaskAssigneesSchema = `
	CREATE TABLE IF NOT EXISTS task_assignees (
		task_id VARCHAR NOT NULL REFERENCES tasks(id),
		user_id VARCHAR NOT NULL REFERENCES users(id),
		PRIMARY KEY (task_id, user_id)
	);
`

const TaskFilesSchema = `
	CREATE TABLE IF NOT EXISTS task_files (
		id VARCHAR PRIMARY KEY,
		task_id VARCHAR NOT NULL REFERENCES tasks(id),
		original_name VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const AttendanceTypesSchema = `
	CREATE TABLE IF NOT EXISTS attendance_types (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		category VARCHAR NOT NULL,
		is_long_term INTEGER NOT NULL DEFAULT 0
	);
`

const AttendancesSchema = `
	CREATE TABLE IF NOT EXISTS attendances (
		id VARCHAR PRIMARY KEY,
		user_id VARCHAR NOT NULL REFERENCES users(id),
		type_id VARCHAR NOT NULL REFERENCES attendance_types(id),
		content VARCHAR,
		location VARCHAR,
		remarks VARCHAR,
		start_date TIMESTAMP NOT NULL,
		end_date TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	TeamsSchema,
	UsersSchema,
	ChainsSchema,
	ReportsSchema,
	TasksSchema,
	TaskAssigneesSchema,
	TaskFilesSchema,
	AttendanceTypesSchema,
	AttendancesSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return db, nil
}
