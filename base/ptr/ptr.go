package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// StringOrNil returns nil for an empty value
func StringOrNil(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// Deref returns the pointed string or "" for nil
func Deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
