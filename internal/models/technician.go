package models

type TechnicianStatus string

const (
	TechActive  TechnicianStatus = "active"
	TechBusy    TechnicianStatus = "busy"
	TechOffline TechnicianStatus = "offline"
)

type TechnicianLocation struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address"`
	LastUpdate string  `json:"lastUpdate"`
}

type CurrentVisit struct {
	ClientName    string    `json:"clientName"`
	ClientAddress string    `json:"clientAddress"`
	StartTime     string    `json:"startTime"`
	EstimatedEnd  string    `json:"estimatedEnd"`
	VisitType     VisitType `json:"visitType"`
}

type TodayStats struct {
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Distance  float64 `json:"distance"`
}

type Technician struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Status       TechnicianStatus   `json:"status"`
	Location     TechnicianLocation `json:"location"`
	CurrentVisit *CurrentVisit      `json:"currentVisit,omitempty"`
	TodayStats   TodayStats         `json:"todayStats"`
}
