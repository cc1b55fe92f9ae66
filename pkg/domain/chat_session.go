package domain

const sessionTitleLimit = 30

// ChatSession is an immutable snapshot of a conversation as of the moment
// it was saved. History is a log of snapshots, not a mutable document.
type ChatSession struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Messages    []Message `json:"messages"`
	Title       string    `json:"title"`
	LastUpdated int64     `json:"lastUpdated"` // unix millis
}

// SessionTitle derives a snapshot title from the opening message: its
// first 30 runes with a trailing ellipsis, always appended.
func SessionTitle(messages []Message) string {
	if len(messages) == 0 {
		return ""
	}
	runes := []rune(messages[0].Text)
	if len(runes) > sessionTitleLimit {
		runes = runes[:sessionTitleLimit]
	}
	return string(runes) + "..."
}
