package normalizer

import (
	"slices"

	"procnorm/internal/sources/guatecompras"
	"procnorm/internal/sources/opentender"
	"procnorm/internal/sources/pnt"
	"procnorm/internal/sources/proact"
	"procnorm/internal/sources/sipot"
	"procnorm/internal/transform"
)

// Registry maps a transform name to its adapter.
type Registry map[string]transform.Func

// DefaultRegistry returns every built-in adapter.
func DefaultRegistry() Registry {
	return Registry{
		"guatecompras":                    guatecompras.Legacy,
		"guatecompras-historic-contracts": guatecompras.HistoricContracts,
		"guatecompras-historic-buyers":    guatecompras.HistoricBuyers,
		"guatecompras-historic-suppliers": guatecompras.HistoricSuppliers,
		"guatecompras-ocds-contracts":     guatecompras.OCDSContracts,
		"guatecompras-ocds-buyers":        guatecompras.OCDSBuyers,
		"guatecompras-ocds-suppliers":     guatecompras.OCDSSuppliers,
		"guatecompras-proveedores":        guatecompras.Proveedores,
		"pnt":                             pnt.Transform,
		"sipot":                           sipot.Transform,
		"proact-contracts":                proact.Contracts,
		"proact-buyers":                   proact.Buyers,
		"proact-suppliers":                proact.Suppliers,
		"opentender-contracts":            opentender.Contracts,
		"opentender-buyers":               opentender.Buyers,
		"opentender-suppliers":            opentender.Suppliers,
	}
}

// Lookup returns the adapter registered under name.
func (r Registry) Lookup(name string) (transform.Func, bool) {
	fn, ok := r[name]

	return fn, ok && fn != nil
}

// Names returns the registered names in lexical order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
