package synth

//go:generate go tool stringer -type=ArtifactKind -trimprefix=Kind -output=kind_string.go

// ArtifactKind identifies one of the generated artifact groups of a class.
type ArtifactKind int

const (
	_ ArtifactKind = iota // zero value is invalid

	KindProperties
	KindEvents
	KindTriggerMethods
	KindPayloadTypes

	// KindTotal is the number of valid kinds plus the invalid zero value.
	KindTotal = int(iota)
)

// Kinds lists the valid kinds in emission order.
func Kinds() []ArtifactKind {
	return []ArtifactKind{KindProperties, KindEvents, KindTriggerMethods, KindPayloadTypes}
}

// FileTag returns the tag used in generated file names, e.g. "eventMethods".
func (k ArtifactKind) FileTag() string {
	switch k {
	case KindProperties:
		return "properties"
	case KindEvents:
		return "events"
	case KindTriggerMethods:
		return "eventMethods"
	case KindPayloadTypes:
		return "eventArgs"
	default:
		return ""
	}
}
