package entity

import (
	"time"

	"kindalike-be/pkg/search"
)

type ChatMessage struct {
	Id              uint
	SessionId       uint
	Role            string
	Content         string
	Recommendations []search.Listing // nil on user turns and on empty results
	CreatedAt       time.Time
}
