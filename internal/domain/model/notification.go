package model

// Notification is a push message delivered to registered device tokens.
type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}
