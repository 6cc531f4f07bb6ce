package users

import (
	"time"

	"github.com/npillmayer/fncomb"
	"github.com/npillmayer/fncomb/pred"
	"github.com/npillmayer/fncomb/reduce"
)

// Retirement ages.
const (
	RetirementAgeMale   = 65
	RetirementAgeFemale = 60
)

// Sum2 adds two numbers.
func Sum2(a, b int) int {
	return a + b
}

// IsMoreThan5000 is true for n > 5000.
func IsMoreThan5000(n int) bool {
	return n > 5000
}

// IsGender returns a predicate matching users of gender g.
func IsGender(g Gender) func(User) bool {
	return func(u User) bool {
		return u.Gender == g
	}
}

// Gender predicates.
var (
	IsMale   = IsGender(Male)
	IsFemale = IsGender(Female)
)

// GenderOf maps u to Male, Female or, for everything else, Other.
func GenderOf(u User) Gender {
	switch {
	case IsMale(u):
		return Male
	case IsFemale(u):
		return Female
	}
	return Other
}

// FullName returns "Title First Last".
func FullName(u User) string {
	return u.Name.Title + " " + u.Name.First + " " + u.Name.Last
}

// IsOlderThan returns a predicate matching users having reached age as
// recorded in their DOB.
func IsOlderThan(age int) func(User) bool {
	return func(u User) bool {
		return u.DOB.Age >= age
	}
}

// Retirement predicates. They check age only, not gender.
var (
	IsRetiredMale   = IsOlderThan(RetirementAgeMale)
	IsRetiredFemale = IsOlderThan(RetirementAgeFemale)
)

// IsRetired matches male users of retirement age and female users of
// retirement age.
var IsRetired = fncomb.Some(
	fncomb.Every(IsMale, IsRetiredMale),
	fncomb.Every(IsFemale, IsRetiredFemale),
)

// RetiredExpr is IsRetired as an inspectable expression.
func RetiredExpr() pred.Expr[User] {
	return pred.Any("retired",
		pred.All("retired male",
			pred.Leaf("male", IsMale),
			pred.Leaf("age ≥ 65", IsRetiredMale),
		),
		pred.All("retired female",
			pred.Leaf("female", IsFemale),
			pred.Leaf("age ≥ 60", IsRetiredFemale),
		),
	)
}

// RetiredNamesByGender collects the full names of retired users, split by
// gender, in a single pass over us. Users of gender Other never appear.
func RetiredNamesByGender(us []User) map[Gender][]string {
	names := map[Gender][]string{Male: {}, Female: {}}
	names = reduce.FilterFold(us, IsRetired, names, func(acc map[Gender][]string, u User) map[Gender][]string {
		g := GenderOf(u)
		acc[g] = append(acc[g], FullName(u))
		return acc
	})
	tracer().Debugf("retired: %d male, %d female", len(names[Male]), len(names[Female]))
	return names
}

// YearsBetween returns the number of whole years from from to to. It is
// negative if to lies before from.
func YearsBetween(from, to time.Time) int {
	if to.Before(from) {
		return -YearsBetween(to, from)
	}
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}

// AgeAt returns a function computing the age of a user at point in time now
// from the date of birth.
func AgeAt(now time.Time) func(User) int {
	dobDate := func(u User) time.Time { return u.DOB.Date }
	yearsSince := func(t time.Time) int { return YearsBetween(t, now) }
	return fncomb.Then(dobDate, yearsSince)
}
