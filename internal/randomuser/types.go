package randomuser

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// dateOnlyLayout is accepted for dob.date values that carry no time part.
const dateOnlyLayout = "2006-01-02"

// Response mirrors the payload returned by the user listing endpoint.
type Response struct {
	Results []User `json:"results"`
	Info    Info   `json:"info"`
}

// Info carries the batch metadata echoed back by the API.
type Info struct {
	Seed    string `json:"seed"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version"`
}

// User describes one fetched profile in transport form.
type User struct {
	Name     Name     `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Cell     string   `json:"cell"`
	Picture  Picture  `json:"picture"`
	Location Location `json:"location"`
	DOB      Dated    `json:"dob"`
	Nat      string   `json:"nat"`
}

// Name holds the personal name parts.
type Name struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// Picture holds the portrait URLs in the three sizes the API serves.
type Picture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

// Location is the postal location of a user.
type Location struct {
	Street   Street   `json:"street"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	Country  string   `json:"country"`
	Postcode Postcode `json:"postcode"`
}

// Street is the street part of an address.
type Street struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Dated is an ISO timestamp paired with the derived age.
type Dated struct {
	Date string `json:"date"`
	Age  int    `json:"age"`
}

// Postcode accepts both the string and numeric encodings the API uses
// depending on nationality.
type Postcode string

// UnmarshalJSON implements json.Unmarshaler.
func (p *Postcode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Postcode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = Postcode(n.String())
	return nil
}

// String returns the postcode as displayed.
func (p Postcode) String() string {
	return string(p)
}

// ParsedDate returns the timestamp as time.Time in UTC, or the zero time when
// the value cannot be parsed.
func (d Dated) ParsedDate() time.Time {
	return parseTime(d.Date)
}

// AgeLabel returns the age as a string, empty when unknown.
func (d Dated) AgeLabel() string {
	if d.Age <= 0 {
		return ""
	}
	return strconv.Itoa(d.Age)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t
	}
	return time.Time{}
}
