package models

import "time"

type Subscriber struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	Source       string    `json:"source,omitempty"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type SubscriberFilters struct {
	Search    string
	Status    string // active or inactive
	Page      int
	Limit     int
	StartDate string
	EndDate   string
}

type SubscriberStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Today    int `json:"today"`
}
