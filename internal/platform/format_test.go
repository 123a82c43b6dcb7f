package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberFormat_English(t *testing.T) {
	nf := NewNumberFormat("en")

	assert.Equal(t, "16", nf.Format(16))
	assert.Equal(t, "1.78", nf.Format(16.0/9.0))
	assert.Equal(t, "0.5", nf.Format(0.5))
	assert.Equal(t, "1,234.5", nf.Format(1234.5))
	assert.Equal(t, "16 : 9", nf.Ratio(16, 9))
}

func TestNumberFormat_Localized(t *testing.T) {
	assert.Equal(t, "1,5", NewNumberFormat("ru").Format(1.5))
	assert.Equal(t, "1,5", NewNumberFormat("pt").Format(1.5))
}

func TestNumberFormat_InvalidLanguage(t *testing.T) {
	nf := NewNumberFormat("not a language tag")

	assert.Equal(t, "2.5", nf.Format(2.5))
}
