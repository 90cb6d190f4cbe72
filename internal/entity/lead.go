package domain

// JoinRequest is a membership lead captured from the join form.
type JoinRequest struct {
	Name    string
	Phone   string
	Email   string
	Package string
}

// ContactMessage is a general inquiry captured from the contact form.
type ContactMessage struct {
	Name    string
	Phone   string
	Email   string
	Message string
}
