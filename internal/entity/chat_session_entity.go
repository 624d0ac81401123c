package entity

import "time"

// ChatSession is derived from the messages sharing a session id; it is never stored.
type ChatSession struct {
	SessionId        string
	Title            string
	FirstMessageTime time.Time
	LastMessageTime  time.Time
}
