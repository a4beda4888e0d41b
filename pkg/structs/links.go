package structs

// Links maps service ids to externally reachable URLs. Every known id is
// present; an unresolved link is an empty string, never a missing key.
type Links map[string]string
