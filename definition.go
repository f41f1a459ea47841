package beaver

func NewDefinition() *Definition {
	return &Definition{}
}

func (d *Definition) SetPublicID(v string) {
	d.publicID = v
	d.hasPublicID = true
}

func (d *Definition) SetSystemID(v string) {
	d.systemID = v
	d.hasSystemID = true
}

// PublicID returns the public identifier and whether it was present
func (d *Definition) PublicID() (string, bool) {
	return d.publicID, d.hasPublicID
}

// SystemID returns the system identifier and whether it was present
func (d *Definition) SystemID() (string, bool) {
	return d.systemID, d.hasSystemID
}
