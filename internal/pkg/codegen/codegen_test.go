package codegen

import (
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestProductCode_Format(t *testing.T) {
	code, err := ProductCode("SEA")
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^SEA-[A-Z0-9]{6}$`), code)
}

func TestProductCode_UppercasesPrefix(t *testing.T) {
	code, err := ProductCode("sea")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "SEA-"))
}

func TestProperty_ProductCodeFormat(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	suffix := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	properties.Property("code is always PREFIX dash six alphanumerics", prop.ForAll(
		func(prefix string) bool {
			code, err := ProductCode(prefix)
			if err != nil {
				return false
			}
			rest, ok := strings.CutPrefix(code, strings.ToUpper(prefix)+"-")
			return ok && suffix.MatchString(rest)
		},
		gen.RegexMatch(`^[A-Za-z]{1,3}$`),
	))

	properties.TestingRun(t)
}
