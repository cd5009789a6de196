// Package users is a state slice holding a remotely-fetched list of users
// together with the loading status of the most recent fetch.
package users

import (
	"fmt"

	"github.com/amp-labs/amp-state/errors"
)

// User is one record in the remote users collection. Field names follow the
// remote JSON shape.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

// Address is a user's postal address.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Geo holds an address's coordinates. The remote encodes them as strings.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Company is a user's employer.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	Bs          string `json:"bs"`
}

// Validate checks a fetched users list for records that can't be stored:
// non-positive IDs and duplicate IDs. All problems are reported together.
func Validate(list []User) error {
	collection := &errors.Collection{}
	seen := make(map[int]bool, len(list))

	for _, user := range list {
		if user.ID <= 0 {
			collection.Add(fmt.Errorf("%w: id %d is not positive", errors.ErrInvalidUser, user.ID))

			continue
		}

		if seen[user.ID] {
			collection.Add(fmt.Errorf("%w: duplicate id %d", errors.ErrInvalidUser, user.ID))
		}

		seen[user.ID] = true
	}

	return collection.GetError()
}
