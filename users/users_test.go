package users

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/fncomb/pred"
	"github.com/npillmayer/fncomb/reduce"
)

func TestSample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fncomb.users")
	defer teardown()
	//
	us := Sample()
	require.Len(t, us, 10)
	assert.Equal(t, "Mr Brad Gibson", FullName(us[0]))
	assert.Equal(t, 1952, us[0].DOB.Date.Year())
	assert.Equal(t, 71, us[0].DOB.Age)
	us[0].Name.First = "changed"
	assert.Equal(t, "Brad", Sample()[0].Name.First, "Sample must return a fresh slice")
}

func TestLoadMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fncomb.users")
	defer teardown()
	//
	_, err := Load(strings.NewReader("users: [ {"))
	assert.Error(t, err)
	_, err = Load(strings.NewReader(`
users:
  - name:
      first: A
      last: B
    gender: robot
    dob:
      date: 2000-01-01T00:00:00Z
`))
	assert.True(t, errors.Is(err, ErrMalformed), "unknown gender must be malformed, got %v", err)
	_, err = Load(strings.NewReader(`
users:
  - name:
      first: A
    gender: male
`))
	assert.True(t, errors.Is(err, ErrMalformed), "missing last name must be malformed, got %v", err)
}

func TestGender(t *testing.T) {
	us := Sample()
	assert.Equal(t, 5, reduce.Count(us, IsMale))
	assert.Equal(t, 4, reduce.Count(us, IsFemale))
	g := reduce.GroupBy(us, GenderOf)
	assert.Len(t, g[Other], 1)
	assert.Equal(t, "Robin", g[Other][0].Name.First)
}

func TestRetired(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fncomb.users")
	defer teardown()
	//
	us := Sample()
	males := reduce.Filter(reduce.Filter(us, IsMale), IsRetiredMale)
	females := reduce.Filter(reduce.Filter(us, IsFemale), IsRetiredFemale)
	assert.Len(t, males, 3)
	assert.Len(t, females, 2)
	assert.Equal(t, 5, reduce.Count(us, IsRetired))
	byGender := RetiredNamesByGender(us)
	assert.Equal(t, []string{"Mr Brad Gibson", "Mr Nils Sandvik", "Mr Lucas Bernard"}, byGender[Male])
	assert.Equal(t, []string{"Mrs Carla Ibáñez", "Miss Aada Heikkinen"}, byGender[Female])
	assert.NotContains(t, byGender, Other)
	expr := RetiredExpr()
	for _, u := range us {
		assert.Equal(t, IsRetired(u), expr.Test(u), FullName(u))
	}
	assert.Contains(t, pred.Explain(expr, us[0]), "skipped", "retired male must skip the female branch")
}

func TestRetiredEmpty(t *testing.T) {
	byGender := RetiredNamesByGender(nil)
	assert.Empty(t, byGender[Male])
	assert.Empty(t, byGender[Female])
}

func TestYearsBetween(t *testing.T) {
	d := func(s string) time.Time {
		tm, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return tm
	}
	assert.Equal(t, 0, YearsBetween(d("2000-05-10"), d("2001-05-09")))
	assert.Equal(t, 1, YearsBetween(d("2000-05-10"), d("2001-05-10")))
	assert.Equal(t, 23, YearsBetween(d("2000-05-10"), d("2024-01-01")))
	assert.Equal(t, -1, YearsBetween(d("2001-05-10"), d("2000-05-10")))
}

func TestAgeAt(t *testing.T) {
	newYear := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	age := AgeAt(newYear)
	for _, u := range Sample() {
		assert.Equal(t, u.DOB.Age, age(u), FullName(u))
	}
	mean := reduce.Mean(reduce.Map(Sample(), age))
	assert.InDelta(t, 60.7, mean.WithDefault(0), 1e-9)
}

func TestNumbers(t *testing.T) {
	ns := Numbers()
	plain := 0
	for _, n := range ns {
		plain = Sum2(plain, n)
	}
	assert.Equal(t, plain, reduce.Reduce(ns, Sum2).WithDefault(0))
	twoPass := reduce.Reduce(reduce.Filter(ns, IsMoreThan5000), Sum2).WithDefault(0)
	onePass := reduce.FilterFold(ns, IsMoreThan5000, 0, Sum2)
	assert.Equal(t, 7300+5001+9999+8800+6100, onePass)
	assert.Equal(t, twoPass, onePass)
}
