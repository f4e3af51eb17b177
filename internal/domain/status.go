package domain

import "time"

type Counts struct {
	Workers           int `json:"workers"`
	Managers          int `json:"managers"`
	Jobs              int `json:"jobs"`
	ActiveAssignments int `json:"active_assignments"`
	UnreadNotices     int `json:"unread_notifications"`
}

type SystemStatus struct {
	Counts          Counts    `json:"counts"`
	DatabaseHealthy bool      `json:"database_healthy"`
	RedisHealthy    bool      `json:"redis_healthy"`
	LiveClients     int       `json:"live_clients"`
	ServerTime      time.Time `json:"server_time"`
}
