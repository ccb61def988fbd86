package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a web based system", Normalize("  A   Web\nbased\t system "))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t  "))
	assert.Equal(t, "already clean", Normalize("already clean"))
}
