package helpers

func DefaultBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}

	return *v
}
