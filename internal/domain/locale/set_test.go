package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain"
	"portfolio/internal/domain/locale"
)

func TestNewSetValidation(t *testing.T) {
	tests := []struct {
		name string
		tags []locale.Tag
		def  locale.Tag
	}{
		{"empty", nil, "en"},
		{"duplicate", []locale.Tag{"en", "pt", "en"}, "en"},
		{"default not configured", []locale.Tag{"en", "pt"}, "fr"},
		{"malformed tag", []locale.Tag{"en", "not a tag"}, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := locale.NewSet(tt.tags, tt.def)
			require.Error(t, err)
			assert.Nil(t, set)
			assert.ErrorIs(t, err, domain.ErrInvalidLocaleSet)
			assert.Equal(t, "invalid_locale_set", domain.Code(err))
		})
	}
}

func TestSetKeepsOrder(t *testing.T) {
	set := newSiteSet(t)
	assert.Equal(t, siteLocales, set.Tags())

	tags := set.Tags()
	tags[0] = "zz"
	assert.Equal(t, locale.Tag("en"), set.Tags()[0], "Tags must return a copy")
}

func TestLabels(t *testing.T) {
	set := newSiteSet(t, locale.WithLabels(map[locale.Tag]string{
		"en-GB": "English (UK)",
		"pt":    "  ",
	}))

	assert.Equal(t, "English (UK)", set.Label("en-GB"))
	assert.Equal(t, "日本語", set.Label("ja"))
	assert.NotEmpty(t, set.Label("pt"), "blank labels keep the native name")
	assert.Equal(t, "xx", set.Label("xx"))
}

func TestCoerce(t *testing.T) {
	set := newSiteSet(t)
	assert.Equal(t, locale.Tag("zh"), set.Coerce("zh"))
	assert.Equal(t, locale.Tag("en"), set.Coerce("de"))
	assert.Equal(t, locale.Tag("en"), set.Coerce(""))
}

func TestNegotiate(t *testing.T) {
	set := newSiteSet(t)

	tests := []struct {
		header string
		want   locale.Tag
	}{
		{"", "en"},
		{"pt-BR,pt;q=0.9,en;q=0.8", "pt"},
		{"ja", "ja"},
		{"de-DE", "en"},
		{"fr-CH, fr;q=0.9", "fr"},
		{"en-GB,en;q=0.9", "en-GB"},
		{";;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Negotiate(tt.header))
		})
	}
}
