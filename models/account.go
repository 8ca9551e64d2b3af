package models

// Account represents a single customer record managed by the service.
// It is both the JSON representation exposed over HTTP and the row
// representation used by the persistence layer.
type Account struct {
	// ID is the store-assigned primary key. It is zero on creation
	// payloads and immutable once assigned.
	ID int64 `json:"id"`

	// Name is the customer's display name. Required.
	Name string `json:"name"`

	// Email is the customer's contact e-mail address. Required.
	Email string `json:"email"`

	// Address is the customer's postal address. Required.
	Address string `json:"address"`

	// PhoneNumber is the customer's phone number. Optional.
	PhoneNumber string `json:"phone_number"`

	// DateJoined is the date the customer joined, rendered as
	// "YYYY-MM-DD". Defaults to the current date on creation when
	// the payload omits it.
	DateJoined Date `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AccountFilter holds the optional equality filters accepted by the
// list operation. Zero-valued fields are ignored.
type AccountFilter struct {
	Name  string
	Email string
}

// IsEmpty reports whether no filter field is set.
func (f AccountFilter) IsEmpty() bool {
	return f.Name == "" && f.Email == ""
}
