package domain

// ContactDetail is a closed variant over the supported contact channels.
// Exhaustive handling lives in the workflow engine; a kind outside this set
// is an explicit rejection, never a silent no-op.
type ContactDetail interface {
	contact()
}

// EmailContact carries an email address to record on both the person and the
// business records.
type EmailContact struct {
	Address string
}

// MobileContact carries a mobile number ("09" followed by seven digits).
type MobileContact struct {
	Number string
}

func (EmailContact) contact()  {}
func (MobileContact) contact() {}
