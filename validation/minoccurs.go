package validation

// MandatoryFromMinOccurs reports whether raw, the literal value of a
// minOccurs attribute, makes a field required. An absent or empty value
// means the schema default of 1, so required; the literal "0" means
// optional. Any other value, including malformed tokens, counts as
// required — ambiguity fails toward "mandatory" so a broken schema never
// hides a required field during editing.
func MandatoryFromMinOccurs(raw string) bool {
	return raw != "0"
}
