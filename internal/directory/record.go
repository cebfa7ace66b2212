package directory

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/crew/internal/randomuser"
)

// BirthdayLayout renders dates of birth as MM/DD/YYYY.
const BirthdayLayout = "01/02/2006"

// Record is one fetched user. Records are immutable once loaded.
type Record struct {
	First        string
	Last         string
	Email        string
	Phone        string
	Picture      string
	City         string
	State        string
	StreetNumber int
	StreetName   string
	Postcode     string
	DOB          time.Time
}

// FromUser converts a transport user into a Record. Text fields are kept as
// the API sent them.
func FromUser(u randomuser.User) Record {
	return Record{
		First:        u.Name.First,
		Last:         u.Name.Last,
		Email:        u.Email,
		Phone:        u.Phone,
		Picture:      u.Picture.Large,
		City:         u.Location.City,
		State:        u.Location.State,
		StreetNumber: u.Location.Street.Number,
		StreetName:   u.Location.Street.Name,
		Postcode:     u.Location.Postcode.String(),
		DOB:          u.DOB.ParsedDate(),
	}
}

// FromUsers converts a batch, preserving order.
func FromUsers(users []randomuser.User) []Record {
	if len(users) == 0 {
		return nil
	}
	out := make([]Record, len(users))
	for i, u := range users {
		out[i] = FromUser(u)
	}
	return out
}

// FullName is the displayed name, "First Last".
func (r Record) FullName() string {
	return strings.TrimSpace(r.First + " " + r.Last)
}

// CityState is the card location line, "City, State".
func (r Record) CityState() string {
	return fmt.Sprintf("%s, %s", r.City, r.State)
}

// Address composes "<street number> <street name>, <state> <postcode>".
func (r Record) Address() string {
	return fmt.Sprintf("%d %s, %s %s", r.StreetNumber, r.StreetName, r.State, r.Postcode)
}

// Birthday formats the date of birth as MM/DD/YYYY, empty when unknown.
func (r Record) Birthday() string {
	if r.DOB.IsZero() {
		return ""
	}
	return r.DOB.Format(BirthdayLayout)
}

// Initials returns up to two upper-case initials for avatar placeholders.
func (r Record) Initials() string {
	var b strings.Builder
	for _, part := range []string{r.First, r.Last} {
		for _, ch := range part {
			b.WriteString(strings.ToUpper(string(ch)))
			break
		}
	}
	return b.String()
}
