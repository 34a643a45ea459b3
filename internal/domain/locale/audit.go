package locale

// NamespaceAudit lists the configured locales a namespace lacks.
type NamespaceAudit struct {
	Namespace  string `json:"namespace" yaml:"namespace"`
	HasDefault bool   `json:"has_default" yaml:"has_default"`
	Missing    []Tag  `json:"missing" yaml:"missing"`
}

// AuditReport summarizes translation coverage of a store.
type AuditReport struct {
	Namespaces []NamespaceAudit `json:"namespaces" yaml:"namespaces"`
	// Missing is the total number of missing namespace/locale pairs.
	Missing int `json:"missing" yaml:"missing"`
	// Broken counts namespaces without a default locale entry.
	Broken int `json:"broken" yaml:"broken"`
}

// Complete reports whether every namespace has every configured locale.
func (r AuditReport) Complete() bool {
	return r.Missing == 0
}

// Audit checks every namespace of store against the locales of set.
func Audit(store *Store, set *Set) AuditReport {
	var report AuditReport
	for _, ns := range store.Namespaces() {
		unit, _ := store.Unit(ns)
		entry := NamespaceAudit{Namespace: ns, Missing: []Tag{}}
		for _, tag := range set.tags {
			if _, ok := unit.Lookup(tag); !ok {
				entry.Missing = append(entry.Missing, tag)
			}
		}
		_, entry.HasDefault = unit.Lookup(set.def)
		if !entry.HasDefault {
			report.Broken++
		}
		report.Missing += len(entry.Missing)
		report.Namespaces = append(report.Namespaces, entry)
	}
	return report
}
