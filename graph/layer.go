package graph

// Layer identifies which architectural tier a component belongs to.
// Layers are ordered from the inside out: Domain is the innermost tier,
// Infrastructure the outermost. Dependencies must point inward (or stay
// within the same layer); Rank exposes the ordering used by validation.
type Layer int

const (
	// LayerUnknown is the fallback for unclassified or unparseable layers.
	LayerUnknown Layer = iota

	// LayerDomain holds core business logic with no outward dependencies.
	LayerDomain

	// LayerPort holds interface definitions for external interactions.
	LayerPort

	// LayerApplication holds use case orchestration.
	LayerApplication

	// LayerAdapter holds concrete implementations of ports.
	LayerAdapter

	// LayerInfrastructure holds external concerns such as databases and APIs.
	LayerInfrastructure
)

var layerNames = map[Layer]string{
	LayerUnknown:        "Unknown",
	LayerDomain:         "Domain",
	LayerPort:           "Port",
	LayerApplication:    "Application",
	LayerAdapter:        "Adapter",
	LayerInfrastructure: "Infrastructure",
}

var layerRanks = map[Layer]int{
	LayerDomain:         0,
	LayerPort:           1,
	LayerApplication:    2,
	LayerAdapter:        3,
	LayerInfrastructure: 4,
}

// Layers lists every valid layer in inward-to-outward order.
// LayerUnknown is deliberately excluded: it is not a valid declaration.
func Layers() []Layer {
	return []Layer{LayerDomain, LayerPort, LayerApplication, LayerAdapter, LayerInfrastructure}
}

// ParseLayer converts a layer name to a Layer. Unrecognized names map to
// LayerUnknown with ok == false.
func ParseLayer(name string) (Layer, bool) {
	for l, n := range layerNames {
		if n == name && l != LayerUnknown {
			return l, true
		}
	}
	return LayerUnknown, false
}

// Valid reports whether the layer is one of the five declared tiers.
func (l Layer) Valid() bool {
	_, ok := layerRanks[l]
	return ok
}

// Rank returns the layer's position in the inward ordering
// (Domain=0 ... Infrastructure=4). Unknown layers rank last.
func (l Layer) Rank() int {
	if r, ok := layerRanks[l]; ok {
		return r
	}
	return len(layerRanks)
}

// String returns the layer name.
func (l Layer) String() string {
	if n, ok := layerNames[l]; ok {
		return n
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler so layers serialize as names.
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names
// decode to LayerUnknown rather than failing the whole document; the builder
// reports them as malformed-entry findings.
func (l *Layer) UnmarshalText(text []byte) error {
	parsed, _ := ParseLayer(string(text))
	*l = parsed
	return nil
}
