package domain

// ComponentKind is the closed set of two-terminal element kinds the
// engine understands.
type ComponentKind string

const (
	KindSource   ComponentKind = "SOURCE"
	KindResistor ComponentKind = "RESISTOR"
	KindLamp     ComponentKind = "LAMP"
	KindWire     ComponentKind = "WIRE"
	KindSwitch   ComponentKind = "SWITCH"
)

// KnownKind reports whether k is one of the supported component kinds.
func KnownKind(k ComponentKind) bool {
	switch k {
	case KindSource, KindResistor, KindLamp, KindWire, KindSwitch:
		return true
	}
	return false
}
