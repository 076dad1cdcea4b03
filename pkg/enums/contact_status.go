package enums

// ContactStatus tracks whether a contact message has been handled. The
// contact endpoint accepts free-ish values, defaulting to "read" when the
// caller sends nothing, so there is no closed-set validation here.
type ContactStatus string

const (
	ContactStatusNew  ContactStatus = "new"
	ContactStatusRead ContactStatus = "read"
)

// String implements fmt.Stringer.
func (c ContactStatus) String() string {
	return string(c)
}
