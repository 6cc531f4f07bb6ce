package users

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Gender of a user.
type Gender string

// Genders present in the records.
const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// Name of a user.
type Name struct {
	Title string `yaml:"title"`
	First string `yaml:"first"`
	Last  string `yaml:"last"`
}

// DOB is a date of birth together with the age recorded at the time the
// record was generated.
type DOB struct {
	Date time.Time `yaml:"date"`
	Age  int       `yaml:"age"`
}

// User is a mock user record.
type User struct {
	Name   Name   `yaml:"name"`
	Gender Gender `yaml:"gender"`
	DOB    DOB    `yaml:"dob"`
}

// ErrMalformed is returned by Load for records which are incomplete or carry an
// unknown gender.
var ErrMalformed = errors.New("malformed user record")

//go:embed users.yaml
var sampleYAML []byte

// Load reads a YAML document holding a list of users under key 'users'.
func Load(r io.Reader) ([]User, error) {
	var doc struct {
		Users []User `yaml:"users"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	for i, u := range doc.Users {
		if err := validate(u); err != nil {
			return nil, fmt.Errorf("user #%d: %w", i, err)
		}
	}
	tracer().Debugf("loaded %d users", len(doc.Users))
	return doc.Users, nil
}

func validate(u User) error {
	if u.Name.First == "" || u.Name.Last == "" {
		return fmt.Errorf("%w: missing name", ErrMalformed)
	}
	switch u.Gender {
	case Male, Female, Other:
	default:
		return fmt.Errorf("%w: unknown gender %q", ErrMalformed, u.Gender)
	}
	if u.DOB.Date.IsZero() {
		return fmt.Errorf("%w: missing date of birth", ErrMalformed)
	}
	return nil
}

// Sample returns the embedded mock users. Every call returns a fresh slice.
func Sample() []User {
	us, err := Load(bytes.NewReader(sampleYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded users are broken: %v", err))
	}
	return us
}

// Numbers returns a static list of sample numbers.
func Numbers() []int {
	return []int{
		1200, 7300, 450, 5001, 9999, 5000, 320, 8800, 64, 6100,
	}
}
