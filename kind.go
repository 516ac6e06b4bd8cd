package psvi

// Kind identifies the built-in kind of a typed value, tagging which native
// representation ActualValue holds.
type Kind int

const (
	// KindUnavailable indicates no typed value is available.
	KindUnavailable Kind = iota
	// KindString indicates an xs:string value.
	KindString
	// KindBoolean indicates an xs:boolean value.
	KindBoolean
	// KindDecimal indicates an xs:decimal value.
	KindDecimal
	// KindInteger indicates an xs:integer value.
	KindInteger
	// KindFloat indicates an xs:float value.
	KindFloat
	// KindDouble indicates an xs:double value.
	KindDouble
	// KindDuration indicates an xs:duration value.
	KindDuration
	// KindDateTime indicates an xs:dateTime value.
	KindDateTime
	// KindTime indicates an xs:time value.
	KindTime
	// KindDate indicates an xs:date value.
	KindDate
	// KindGYearMonth indicates an xs:gYearMonth value.
	KindGYearMonth
	// KindGYear indicates an xs:gYear value.
	KindGYear
	// KindGMonthDay indicates an xs:gMonthDay value.
	KindGMonthDay
	// KindGDay indicates an xs:gDay value.
	KindGDay
	// KindGMonth indicates an xs:gMonth value.
	KindGMonth
	// KindHexBinary indicates an xs:hexBinary value.
	KindHexBinary
	// KindBase64Binary indicates an xs:base64Binary value.
	KindBase64Binary
	// KindAnyURI indicates an xs:anyURI value.
	KindAnyURI
	// KindQName indicates an xs:QName value.
	KindQName
	// KindNotation indicates an xs:NOTATION value.
	KindNotation
)

var kindNames = [...]string{
	KindUnavailable:  "unavailable",
	KindString:       "string",
	KindBoolean:      "boolean",
	KindDecimal:      "decimal",
	KindInteger:      "integer",
	KindFloat:        "float",
	KindDouble:       "double",
	KindDuration:     "duration",
	KindDateTime:     "dateTime",
	KindTime:         "time",
	KindDate:         "date",
	KindGYearMonth:   "gYearMonth",
	KindGYear:        "gYear",
	KindGMonthDay:    "gMonthDay",
	KindGDay:         "gDay",
	KindGMonth:       "gMonth",
	KindHexBinary:    "hexBinary",
	KindBase64Binary: "base64Binary",
	KindAnyURI:       "anyURI",
	KindQName:        "QName",
	KindNotation:     "NOTATION",
}

// String returns the XSD local name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}
