package storage

import "time"

// Session is a signed-in (or anonymous) viewer of the feed gateway.
type Session struct {
	ID          string    `dynamodbav:"PK" json:"id"`
	Username    string    `dynamodbav:"Username" json:"username,omitempty"`
	Name        string    `dynamodbav:"Name" json:"name,omitempty"`
	AccessToken string    `dynamodbav:"AccessToken" json:"-"`
	CreatedAt   time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
	ExpiresAt   int64     `dynamodbav:"ExpiresAt,omitempty" json:"-"` // epoch seconds, table TTL attribute
}
