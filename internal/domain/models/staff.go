package models

import "time"

// Task types, priorities and statuses for staff work items.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
	TaskCancelled  = "cancelled"
)

type Task struct {
	ID          int64      `json:"id"`
	StaffID     int64      `json:"staffId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Location    string     `json:"location"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type StaffAssignment struct {
	ID           int64     `json:"id"`
	StaffID      int64     `json:"staffId"`
	TrainID      int64     `json:"trainId"`
	AssignedDate string    `json:"assignedDate"`
	Shift        string    `json:"shift"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ReportMetrics mirrors the embedded metrics block of staff reports.
type ReportMetrics struct {
	PassengersAssisted int `json:"passengersAssisted"`
	IssuesResolved     int `json:"issuesResolved"`
	TrainsMonitored    int `json:"trainsMonitored"`
	DelaysReported     int `json:"delaysReported"`
}

type Report struct {
	ID             int64         `json:"id"`
	StaffID        int64         `json:"staffId"`
	Date           string        `json:"date"`
	Type           string        `json:"type"`
	Content        string        `json:"content"`
	Metrics        ReportMetrics `json:"metrics"`
	Status         string        `json:"status"`
	ReviewedBy     *int64        `json:"reviewedBy,omitempty"`
	ReviewComments string        `json:"reviewComments,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}
