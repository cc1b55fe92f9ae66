package domain

const (
	DefaultAIName  = "DevCORE"
	DefaultDevName = "XdpzQ"
)

// User is a registered identity. Passwords are stored and compared in
// plaintext: the terminal is a local demo surface, not an auth boundary.
type User struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	RequestedAIName  string `json:"requestedAiName"`
	RequestedDevName string `json:"requestedDevName"`
	IsNameApproved   bool   `json:"isNameApproved"`
	IsAdmin          bool   `json:"isAdmin"`
}

// AIName returns the assistant name shown to this user. Requested names
// are honored only after an admin approves them.
func (u User) AIName() string {
	if u.IsNameApproved && u.RequestedAIName != "" {
		return u.RequestedAIName
	}
	return DefaultAIName
}

// DevName returns the operator name shown to this user.
func (u User) DevName() string {
	if u.IsNameApproved && u.RequestedDevName != "" {
		return u.RequestedDevName
	}
	return DefaultDevName
}
