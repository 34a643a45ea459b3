package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/internal/domain/locale"
)

func TestAudit(t *testing.T) {
	set := newSiteSet(t)
	store := profileStore(t, set)

	report := locale.Audit(store, set)

	assert.False(t, report.Complete())
	assert.Equal(t, 1, report.Broken)
	// nav: 6 missing, profile: 5 missing, theme: 5 missing
	assert.Equal(t, 16, report.Missing)

	byNS := map[string]locale.NamespaceAudit{}
	for _, ns := range report.Namespaces {
		byNS[ns.Namespace] = ns
	}
	assert.True(t, byNS["profile"].HasDefault)
	assert.Equal(t, []locale.Tag{"fr", "es", "zh", "ja", "en-GB"}, byNS["profile"].Missing)
	assert.False(t, byNS["theme"].HasDefault)
	assert.Contains(t, byNS["theme"].Missing, locale.Tag("en"))
}

func TestAuditComplete(t *testing.T) {
	set, err := locale.NewSet([]locale.Tag{"en", "pt"}, "en")
	assert.NoError(t, err)

	b := locale.NewBuilder()
	assert.NoError(t, b.Add("nav", "en", "Home"))
	assert.NoError(t, b.Add("nav", "pt", "Início"))

	report := locale.Audit(b.Build(set), set)
	assert.True(t, report.Complete())
	assert.Zero(t, report.Broken)
	assert.Empty(t, report.Namespaces[0].Missing)
}
