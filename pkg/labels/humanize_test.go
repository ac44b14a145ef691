package labels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/labels"
)

func TestHumanize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"firstName":         "First Name",
		"first_name":        "First Name",
		"first-name":        "First Name",
		"email":             "Email",
		"userID":            "User Id",
		"profile.firstName": "First Name",
		"age2":              "Age2",
		"":                  "",
	}
	for input, want := range cases {
		assert.Equal(t, want, labels.Humanize(input), "input %q", input)
	}
}

func TestHumanizeIdentifierKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "First Name", labels.Humanize("firstName#3f2a"))
}

func TestHumanizeAsFallback(t *testing.T) {
	t.Parallel()

	f := formkit.New(formkit.WithLabelFallback(labels.Humanize))
	f.Add("firstName", "")

	m := formkit.NewError("%{field} is required").WithField("firstName")
	assert.Equal(t, "First Name is required", f.Format(*m))
}
