package flags

// OptionalString is a string flag that remembers whether it was set,
// so an explicit empty value can be told apart from an omitted flag
type OptionalString struct {
	Value string
	IsSet bool
}

// Type returns the optional string flag type
func (s OptionalString) Type() string { return TypeString }

func (s OptionalString) String() string { return s.Value }

// Set sets the value and marks the flag as set
func (s *OptionalString) Set(val string) error {
	s.Value = val
	s.IsSet = true
	return nil
}

// Ptr returns a pointer to the value when the flag was set, nil otherwise
func (s OptionalString) Ptr() *string {
	if !s.IsSet {
		return nil
	}
	v := s.Value
	return &v
}
