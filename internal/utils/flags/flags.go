package flags

// set of known flag types
const (
	TypeInt    = "int"
	TypeString = "string"
)
